// Package config resolves Salesforce DX configuration properties
// across three layered sources with a fixed precedence:
//  1. Environment variables (SFDX_*, highest priority)
//  2. Local config (<project>/.sfdx/sfdx-config.json)
//  3. Global config (~/.sfdx/sfdx-config.json, the fallback)
//
// The Aggregator merges all three into one resolved snapshot and
// answers not just "what is the value of X" but "where did it come
// from": the winning layer and the physical origin (file path or
// $SFDX_ variable reference).
//
// # Basic Usage
//
// Load an aggregator, then query values and provenance:
//
//	agg, err := config.Load(ctx)
//	if err != nil {
//	    return err
//	}
//
//	value, err := agg.Value("defaultusername")   // resolved value
//	loc := agg.Location("defaultusername")       // config.LocationLocal, ...
//	path := agg.Path("defaultusername")          // file path or $SFDX_* name
//
//	info, err := agg.Info("defaultusername")     // all of the above at once
//	for _, info := range agg.List() {            // every resolved key, sorted
//	    fmt.Println(info.Key, info.Value, info.Location)
//	}
//
// The snapshot is taken once per Load; call Reload to re-read every
// source. A failed Reload leaves the previous snapshot in effect.
//
// # Writing Values
//
// Writes go through Settings, which checks keys against the property
// registry, runs per-property validators, and transparently encrypts
// properties flagged Encrypted:
//
//	settings, err := config.NewSettings(config.SettingsOptions{Global: true})
//	if err != nil {
//	    return err
//	}
//	if err := settings.Read(ctx); err != nil {
//	    return err
//	}
//	if err := settings.Set("apiVersion", "55.0"); err != nil {
//	    return err // config.ErrUnknownKey or config.ErrInvalidValue
//	}
//	if err := settings.Write(ctx); err != nil {
//	    return err
//	}
//
// # Workspace Discovery
//
// The local layer lives in the project workspace found by walking
// upward from the working directory to the nearest sfdx-project.json.
// Running outside any workspace is not an error: the aggregator
// simply resolves from the global file and the environment.
package config
