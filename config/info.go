package config

// Info is the provenance-annotated view of one configuration
// property: the effective value plus where it came from.
type Info struct {
	// Key is the property name.
	Key string

	// Value is the resolved value, nil when no layer sets the key.
	Value any

	// Location is the winning layer, LocationNone when unset.
	Location Location

	// Path describes the winning layer's origin: a settings file path
	// for the file layers, a $SFDX_* reference for the environment.
	Path string
}

// IsEnvVar reports whether the value came from an environment
// variable. Derived from Location so it can never disagree with it.
func (i Info) IsEnvVar() bool {
	return i.Location == LocationEnvironment
}

// IsLocal reports whether the value came from the project settings
// file.
func (i Info) IsLocal() bool {
	return i.Location == LocationLocal
}

// IsGlobal reports whether the value came from the global settings
// file.
func (i Info) IsGlobal() bool {
	return i.Location == LocationGlobal
}
