// Package sfdxkit provides layered Salesforce DX configuration
// resolution for CLI tooling.
//
// The package is organized into subpackages by domain:
//
//   - config: The aggregation core: merge environment, local, and
//     global layers; answer value and provenance queries
//   - store: File-backed settings stores (JSON/JSONC, YAML, TOML)
//   - schema: The recognized property set and its validation rules
//   - envvars: SFDX_ environment variable naming and snapshots
//   - project: Project workspace discovery (sfdx-project.json)
//   - crypto: Value encryption for secret properties
//   - alias: Named shortcuts for org usernames
//   - errors: CLI error presentation and predicates
//   - testutil: Test fixtures for workspaces and settings files
//
// # Quick Start
//
//	import "github.com/randalmurphal/sfdxkit/config"
//
//	agg, err := config.Load(ctx)
//	if err != nil {
//	    return err
//	}
//
//	value, err := agg.Value("defaultusername")
//	info, err := agg.Info("defaultusername") // value + where it came from
//
// See individual package documentation for detailed usage.
package sfdxkit
