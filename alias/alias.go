package alias

import (
	"context"
	"fmt"
	"sort"

	"github.com/randalmurphal/sfdxkit/store"
)

const (
	// DefaultGroup is the alias group used when none is given.
	DefaultGroup = "orgs"

	// Filename is the default alias file name under the global
	// config directory.
	Filename = "alias.json"
)

// Options configures which alias file and group to open.
type Options struct {
	// Dir overrides the global config directory (default ~/.sfdx).
	Dir string

	// Group selects the alias group. Defaults to DefaultGroup.
	Group string

	// Filename overrides the alias file name. Defaults to Filename.
	Filename string
}

func (o Options) group() string {
	if o.Group == "" {
		return DefaultGroup
	}
	return o.Group
}

func (o Options) filename() string {
	if o.Filename == "" {
		return Filename
	}
	return o.Filename
}

// Group is one named group of aliases loaded from the alias file.
// Mutations stay in memory until Write.
type Group struct {
	name  string
	store *store.Store
}

// Open loads the alias file and returns the selected group. A missing
// file opens as an empty group.
func Open(ctx context.Context, opts Options) (*Group, error) {
	s, err := store.New(store.Options{
		Filename: opts.filename(),
		Global:   true,
		Dir:      opts.Dir,
	})
	if err != nil {
		return nil, fmt.Errorf("open alias store: %w", err)
	}
	if err := s.Read(ctx); err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}
	return &Group{name: opts.group(), store: s}, nil
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Path returns the on-disk path of the alias file.
func (g *Group) Path() string {
	return g.store.Path()
}

// keyPath addresses one alias inside the group. Both the group name
// and the alias may contain dots, so each is escaped as one segment.
func (g *Group) keyPath(name string) string {
	return store.EscapeKey(g.name) + "." + store.EscapeKey(name)
}

// members returns the group's alias mapping, or nil if the group does
// not exist yet.
func (g *Group) members() map[string]any {
	m, _ := g.store.Get(g.name).(map[string]any)
	return m
}

// Get returns the value an alias points at and whether it is defined.
func (g *Group) Get(name string) (string, bool) {
	value := g.store.GetPath(g.keyPath(name))
	if value == nil {
		return "", false
	}
	return toString(value), true
}

// Set defines or replaces an alias.
func (g *Group) Set(name, value string) error {
	if name == "" {
		return fmt.Errorf("alias name must not be empty")
	}
	return g.store.SetPath(g.keyPath(name), value)
}

// Unset removes an alias, reporting whether it was defined.
func (g *Group) Unset(name string) bool {
	return g.store.UnsetPath(g.keyPath(name))
}

// Names returns all alias names in the group in ascending order.
func (g *Group) Names() []string {
	members := g.members()
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NamesForValue returns the names of every alias pointing at value,
// in ascending order.
func (g *Group) NamesForValue(value string) []string {
	var names []string
	for name, v := range g.members() {
		if toString(v) == value {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve maps an alias to its value. Input that is not a defined
// alias is returned unchanged, so callers can accept either form.
func (g *Group) Resolve(nameOrValue string) string {
	if value, ok := g.Get(nameOrValue); ok {
		return value
	}
	return nameOrValue
}

// Write persists the alias file.
func (g *Group) Write(ctx context.Context) error {
	return g.store.Write(ctx)
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
