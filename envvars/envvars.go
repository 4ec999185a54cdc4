// Package envvars maps configuration keys to SFDX_ environment
// variables and reads their values from the process environment.
package envvars

import (
	"os"
	"strings"
	"unicode"
)

// Prefix is prepended to every derived environment variable name.
const Prefix = "SFDX_"

// Name returns the environment variable name for a config key:
// Prefix followed by the upper snake-case form of the key.
// Camel humps, dashes, and dots all become underscores, so
// "apiVersion" maps to SFDX_API_VERSION and "defaultusername"
// maps to SFDX_DEFAULTUSERNAME. The transform is deterministic
// and used for both lookup and display.
func Name(key string) string {
	var b strings.Builder
	b.WriteString(Prefix)

	prevLower := false
	for _, r := range key {
		switch {
		case r == '-' || r == '.' || r == ' ' || r == '_':
			b.WriteByte('_')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			prevLower = false
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}

	return b.String()
}

// Reference returns the shell-reference form of the variable name,
// e.g. "$SFDX_LOG_LEVEL". Path queries display this form.
func Reference(key string) string {
	return "$" + Name(key)
}

// Reader reads environment values for config keys.
type Reader struct {
	// Lookup resolves a variable name to its value.
	// Defaults to os.LookupEnv if nil.
	Lookup func(name string) (string, bool)
}

// NewReader creates a Reader backed by the process environment.
func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) lookup() func(string) (string, bool) {
	if r.Lookup == nil {
		return os.LookupEnv
	}
	return r.Lookup
}

// Get returns the environment value for a config key and whether the
// variable is set. A variable set to the empty string counts as set.
func (r *Reader) Get(key string) (string, bool) {
	return r.lookup()(Name(key))
}

// Snapshot reads the environment once for each key and returns a map
// of key to value for every variable that is set. The result is a
// point-in-time copy; later changes to the environment are not
// reflected until the caller takes a new snapshot.
func (r *Reader) Snapshot(keys []string) map[string]string {
	vars := make(map[string]string)
	for _, key := range keys {
		if value, ok := r.Get(key); ok {
			vars[key] = value
		}
	}
	return vars
}
