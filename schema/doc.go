// Package schema defines the set of recognized configuration
// properties and their metadata.
//
// Core types:
//   - Property: A configuration property with validation and handling flags
//   - Validator: Input validation for property values
//   - Registry: The allowed-property set used by resolution and writes
//
// The standard Salesforce DX properties are available via Default().
// Custom registries can be built for tooling that extends the set:
//
//	reg := schema.NewRegistry()
//	reg.MustRegister(schema.Property{Key: "myProperty"})
//
//	agg, err := config.Load(ctx, config.WithRegistry(reg))
package schema
