package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/randalmurphal/sfdxkit/envvars"
	"github.com/randalmurphal/sfdxkit/project"
	"github.com/randalmurphal/sfdxkit/schema"
)

// Aggregator resolves configuration properties across the three
// layers (environment variables, the project settings file, and the
// global settings file) and answers provenance queries about where
// each effective value came from.
//
// Construct with Load, which performs all I/O up front. Queries read
// the snapshot taken at load time; Reload takes a fresh one. The
// aggregator does no internal locking: callers running queries
// concurrently must not Reload at the same time.
type Aggregator struct {
	registry *schema.Registry
	reader   *envvars.Reader
	logger   *slog.Logger
	opts     options

	local  *Settings // nil outside a project workspace
	global *Settings

	layers    []Layer // descending precedence
	merged    map[string]any
	resolveID string
}

// Load reads all three layers and returns an aggregator holding the
// resolved snapshot. Running outside a project workspace is not an
// error; the local layer is simply absent. Any other failure, such as
// a malformed settings file or an unreadable directory, aborts
// construction.
func Load(ctx context.Context, opts ...Option) (*Aggregator, error) {
	o := newOptions(opts)
	a := &Aggregator{
		registry: o.schemaRegistry(),
		reader:   o.envReader(),
		logger:   o.log(),
		opts:     o,
	}
	if err := a.load(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// load runs the full resolution pass. All state is built aside and
// swapped in only at the end, so a failed pass leaves a previously
// loaded snapshot untouched.
func (a *Aggregator) load(ctx context.Context) error {
	// Local layer first. Not being inside a project workspace just
	// means there is no local layer.
	local, err := NewSettings(SettingsOptions{
		ProjectDir: a.opts.projectDir,
		Dir:        a.opts.globalDir,
		Registry:   a.registry,
		Logger:     a.logger,
	})
	if err != nil {
		if !errors.Is(err, project.ErrNoWorkspace) {
			return fmt.Errorf("open local config: %w", err)
		}
		local = nil
	}

	global, err := NewSettings(SettingsOptions{
		Global:   true,
		Dir:      a.opts.globalDir,
		Registry: a.registry,
		Logger:   a.logger,
	})
	if err != nil {
		return fmt.Errorf("open global config: %w", err)
	}

	// Snapshot the environment once per allowed key. Re-reads happen
	// only on Reload, keeping resolution deterministic in between.
	env := a.reader.Snapshot(a.registry.Keys())

	// Global is read and folded first so the layers above overwrite
	// it key by key.
	if err := global.Read(ctx); err != nil {
		return err
	}
	if local != nil {
		if err := local.Read(ctx); err != nil {
			return err
		}
	}

	layers := make([]Layer, 0, 3)
	layers = append(layers, newEnvLayer(env))
	if local != nil {
		layers = append(layers, newFileLayer(LocationLocal, local))
	}
	layers = append(layers, newFileLayer(LocationGlobal, global))

	// Merge ascending: walk the stack bottom-up so each layer
	// overwrites the one below it, last writer wins per key.
	merged := make(map[string]any)
	for i := len(layers) - 1; i >= 0; i-- {
		for key, value := range layers[i].Contents {
			merged[key] = value
		}
	}

	resolveID, _ := nanoid.New()

	localPath := ""
	if local != nil {
		localPath = local.Path()
	}
	a.logger.Debug("config resolved",
		slog.String("resolve_id", resolveID),
		slog.String("global", global.Path()),
		slog.String("local", localPath),
		slog.Int("keys", len(merged)),
		slog.Int("env_overrides", len(env)))

	a.local = local
	a.global = global
	a.layers = layers
	a.merged = merged
	a.resolveID = resolveID
	return nil
}

// Reload re-reads all three layers from scratch. On failure the
// previous snapshot stays in effect.
func (a *Aggregator) Reload(ctx context.Context) error {
	return a.load(ctx)
}

// Value returns the resolved value for a key. Keys outside the
// property registry fail with ErrUnknownKey even when a file layer
// happens to contain them; registered keys with no value anywhere
// return (nil, nil).
func (a *Aggregator) Value(key string) (any, error) {
	if !a.registry.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return a.merged[key], nil
}

// Location reports which layer a key's value comes from, re-running
// the precedence check against the per-layer contents rather than the
// merged snapshot. The environment wins on presence alone; the file
// layers only claim a key whose value is truthy, so a key set to
// false or "" in a file does not anchor a location even though Value
// still returns it.
func (a *Aggregator) Location(key string) Location {
	for _, layer := range a.layers {
		if layer.claims(key) {
			return layer.Location
		}
	}
	return LocationNone
}

// Path returns the origin of a key's value: the $SFDX_* reference
// when the environment sets it, otherwise the settings file path of
// the first layer whose raw contents contain the key. Unlike
// Location this checks presence, not truthiness.
func (a *Aggregator) Path(key string) string {
	for _, layer := range a.layers {
		if layer.Has(key) {
			return layer.Origin(key)
		}
	}
	return ""
}

// Info returns the provenance-annotated view of one registered key.
// Keys outside the registry fail with ErrUnknownKey.
func (a *Aggregator) Info(key string) (Info, error) {
	value, err := a.Value(key)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Key:      key,
		Value:    value,
		Location: a.Location(key),
		Path:     a.Path(key),
	}, nil
}

// List returns one Info per key in the resolved snapshot, in
// ascending key order. Unlike Value, this includes keys the file
// layers contributed outside the property registry.
func (a *Aggregator) List() []Info {
	keys := make([]string, 0, len(a.merged))
	for key := range a.merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	infos := make([]Info, len(keys))
	for i, key := range keys {
		infos[i] = Info{
			Key:      key,
			Value:    a.merged[key],
			Location: a.Location(key),
			Path:     a.Path(key),
		}
	}
	return infos
}

// LocalConfig returns the project settings layer, or nil when the
// aggregator loaded outside a workspace.
func (a *Aggregator) LocalConfig() *Settings {
	return a.local
}

// GlobalConfig returns the global settings layer.
func (a *Aggregator) GlobalConfig() *Settings {
	return a.global
}

// Layers returns the resolution stack in descending precedence order:
// environment, then the local layer when present, then global. The
// returned layers are copies; mutating their contents does not affect
// the aggregator.
func (a *Aggregator) Layers() []Layer {
	layers := make([]Layer, len(a.layers))
	for i, l := range a.layers {
		contents := make(map[string]any, len(l.Contents))
		for key, value := range l.Contents {
			contents[key] = value
		}
		layers[i] = Layer{Location: l.Location, Contents: contents, origin: l.origin}
	}
	return layers
}

// EnvVars returns a copy of the environment snapshot taken at load
// time, keyed by config key.
func (a *Aggregator) EnvVars() map[string]string {
	vars := make(map[string]string)
	for _, layer := range a.layers {
		if layer.Location != LocationEnvironment {
			continue
		}
		for key, value := range layer.Contents {
			if s, ok := value.(string); ok {
				vars[key] = s
			}
		}
	}
	return vars
}

// Merged returns a copy of the resolved snapshot.
func (a *Aggregator) Merged() map[string]any {
	merged := make(map[string]any, len(a.merged))
	for key, value := range a.merged {
		merged[key] = value
	}
	return merged
}
