package config

import "github.com/randalmurphal/sfdxkit/envvars"

// Layer is one resolution source as a tagged record: the location, the
// contents the source contributed, and the origin those contents came
// from. Keeping all three sources in this one shape lets the
// precedence checks walk a single stack instead of probing three
// differently typed stores.
type Layer struct {
	// Location tags which source this layer is.
	Location Location

	// Contents maps keys to the raw values the layer holds.
	Contents map[string]any

	// origin is the settings file path for the file layers. The
	// environment layer synthesizes its origin per key instead.
	origin string
}

// newEnvLayer builds the environment layer from a snapshot keyed by
// config key.
func newEnvLayer(vars map[string]string) Layer {
	contents := make(map[string]any, len(vars))
	for key, value := range vars {
		contents[key] = value
	}
	return Layer{Location: LocationEnvironment, Contents: contents}
}

// newFileLayer captures a settings layer's contents and path.
func newFileLayer(loc Location, s *Settings) Layer {
	return Layer{Location: loc, Contents: s.ToObject(), origin: s.Path()}
}

// Has reports whether the layer's raw contents include the key.
func (l Layer) Has(key string) bool {
	_, ok := l.Contents[key]
	return ok
}

// Get returns the layer's raw value for the key, or nil if absent.
func (l Layer) Get(key string) any {
	return l.Contents[key]
}

// Origin returns the origin descriptor for a key resolved from this
// layer: the $SFDX_* shell reference for the environment, the settings
// file path for the file layers.
func (l Layer) Origin(key string) string {
	if l.Location == LocationEnvironment {
		return envvars.Reference(key)
	}
	return l.origin
}

// claims reports whether the layer anchors a key for location
// purposes. The environment claims on presence alone; the file layers
// claim only truthy values, so a key set to false or "" in a file
// defers to the layer below.
func (l Layer) claims(key string) bool {
	if l.Location == LocationEnvironment {
		return l.Has(key)
	}
	return truthy(l.Contents[key])
}

// truthy applies the loose falsiness rules the location check uses
// for file-layer values: nil, false, empty strings, and zero numbers
// all count as absent.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return true
	}
}
