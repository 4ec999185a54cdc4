package schema

import (
	"fmt"
	"sort"
)

// Validator checks a candidate value before it is written for a property.
type Validator struct {
	// Validate reports whether the value is acceptable.
	Validate func(value any) bool

	// FailedMessage describes the expected format when validation fails.
	FailedMessage string
}

// Property describes a single configuration property.
type Property struct {
	// Key is the property name. Case-sensitive, stable identity.
	Key string

	// Hidden excludes the property from default listings.
	Hidden bool

	// Encrypted marks values for encryption at rest.
	Encrypted bool

	// Deprecated marks the property as superseded. Writes still work
	// but are logged with a pointer to ReplacedBy.
	Deprecated bool

	// DeprecatedMessage explains the deprecation (optional).
	DeprecatedMessage string

	// ReplacedBy names the property that supersedes this one (optional).
	ReplacedBy string

	// Description is a short human-readable summary (optional).
	Description string

	// Input validates values on write. Nil means any value is accepted.
	Input *Validator
}

// Registry holds the allowed-property set.
type Registry struct {
	props map[string]Property
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		props: make(map[string]Property),
	}
}

// Register adds a property to the registry.
// It fails on an empty key or a duplicate registration.
func (r *Registry) Register(p Property) error {
	if p.Key == "" {
		return fmt.Errorf("register property: empty key")
	}
	if _, exists := r.props[p.Key]; exists {
		return fmt.Errorf("register property: duplicate key %q", p.Key)
	}
	r.props[p.Key] = p
	return nil
}

// MustRegister adds a property and panics on error.
// Use for static registry construction.
func (r *Registry) MustRegister(p Property) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Get returns the property for a key and whether it is registered.
func (r *Registry) Get(key string) (Property, bool) {
	p, ok := r.props[key]
	return p, ok
}

// Has reports whether a key is in the allowed set.
func (r *Registry) Has(key string) bool {
	_, ok := r.props[key]
	return ok
}

// All returns every registered property sorted by key.
func (r *Registry) All() []Property {
	all := make([]Property, 0, len(r.props))
	for _, p := range r.props {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Key < all[j].Key
	})
	return all
}

// Keys returns every registered key in ascending order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.props))
	for k := range r.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
