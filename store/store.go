package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/sjson"
)

// Default placement for settings files.
const (
	// DefaultFilename is the settings filename used when none is given.
	DefaultFilename = "sfdx-config.json"

	// dirName is the dot-directory holding settings files, both under
	// the user home (global) and under a project root (local).
	dirName = ".sfdx"
)

// Options configures the placement of a settings store.
type Options struct {
	// Filename is the settings file name. Defaults to DefaultFilename.
	// The extension selects the codec: .json (default), .yaml/.yml, .toml.
	Filename string

	// Global places the file under the user config directory
	// instead of a project.
	Global bool

	// Dir overrides the global config directory (default ~/.sfdx).
	// Only used when Global is set.
	Dir string

	// RootDir is the project root for local placement. The file lives
	// at <RootDir>/.sfdx/<Filename>. Required when Global is false.
	RootDir string

	// FileMode is the permission for written files.
	// Defaults to 0600 for global stores and 0644 for local ones.
	FileMode os.FileMode
}

func (o Options) filename() string {
	if o.Filename == "" {
		return DefaultFilename
	}
	return o.Filename
}

func (o Options) fileMode() os.FileMode {
	if o.FileMode != 0 {
		return o.FileMode
	}
	if o.Global {
		return 0o600
	}
	return 0o644
}

// DefaultDir returns the default global config directory (~/.sfdx).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Store is one settings file loaded into memory.
//
// A store must be populated with Read before values can be queried or
// changed. Mutations apply to the in-memory contents and, for JSON
// files, to the retained on-disk document; nothing reaches disk until
// Write. The zero value is not usable; construct with New.
type Store struct {
	path     string
	global   bool
	mode     os.FileMode
	codec    codec
	editable bool // JSON file whose raw document can be edited in place

	contents map[string]any
	raw      []byte
	loaded   bool
}

// New creates a store for the file placement described by opts.
// It resolves the path but performs no I/O; call Read to load.
func New(opts Options) (*Store, error) {
	var dir string
	if opts.Global {
		dir = opts.Dir
		if dir == "" {
			var err error
			dir, err = DefaultDir()
			if err != nil {
				return nil, err
			}
		}
	} else {
		if opts.RootDir == "" {
			return nil, errors.New("local store requires a project root")
		}
		dir = filepath.Join(opts.RootDir, dirName)
	}

	path := filepath.Join(dir, opts.filename())
	c := codecFor(path)
	_, isJSON := c.(jsonCodec)

	return &Store{
		path:     path,
		global:   opts.Global,
		mode:     opts.fileMode(),
		codec:    c,
		editable: isJSON,
	}, nil
}

// Read loads the file contents into memory, replacing any prior state.
// A missing file is a valid empty store; a file that exists but cannot
// be decoded yields a *ParseError.
func (s *Store) Read(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.contents = make(map[string]any)
			s.raw = nil
			s.loaded = true
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	if s.editable {
		// Blank JSONC comments in place; layout and positions survive.
		data = jsonc.ToJSON(data)
	}

	contents, err := s.codec.Decode(data)
	if err != nil {
		return &ParseError{Path: s.path, Err: err}
	}
	if contents == nil {
		contents = make(map[string]any)
	}

	s.contents = contents
	if s.editable {
		s.raw = data
	}
	s.loaded = true
	return nil
}

// Get returns the raw value for a key, or nil if absent.
func (s *Store) Get(key string) any {
	return s.contents[key]
}

// Has reports whether the key is present in the contents,
// regardless of its value.
func (s *Store) Has(key string) bool {
	_, ok := s.contents[key]
	return ok
}

// Keys returns all top-level keys in ascending order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.contents))
	for k := range s.contents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToObject returns a deep copy of the full contents mapping.
func (s *Store) ToObject() map[string]any {
	if s.contents == nil {
		return map[string]any{}
	}
	return cloneMap(s.contents)
}

// Path returns the absolute on-disk path of the settings file.
func (s *Store) Path() string {
	return s.path
}

// IsGlobal reports whether this store uses global placement.
func (s *Store) IsGlobal() bool {
	return s.global
}

// Exists reports whether the settings file exists on disk.
func (s *Store) Exists() (bool, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Set stores a value under a top-level key.
func (s *Store) Set(key string, value any) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	s.contents[key] = value
	s.editRaw(EscapeKey(key), value, false)
	return nil
}

// SetPath stores a value at a dotted path such as "orgs.dev",
// creating intermediate objects as needed. Dots inside a single
// segment must be backslash-escaped.
func (s *Store) SetPath(path string, value any) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	setByPath(s.contents, path, value)
	s.editRaw(path, value, false)
	return nil
}

// GetPath returns the value at a dotted path, or nil if absent.
func (s *Store) GetPath(path string) any {
	if s.editable && s.raw != nil {
		result := gjson.GetBytes(s.raw, path)
		if !result.Exists() {
			return nil
		}
		return result.Value()
	}
	value, ok := getByPath(s.contents, path)
	if !ok {
		return nil
	}
	return value
}

// Unset removes a top-level key, reporting whether it was present.
func (s *Store) Unset(key string) bool {
	if !s.loaded {
		return false
	}
	if _, ok := s.contents[key]; !ok {
		return false
	}
	delete(s.contents, key)
	s.editRaw(EscapeKey(key), nil, true)
	return true
}

// UnsetPath removes the value at a dotted path, reporting whether
// anything was removed.
func (s *Store) UnsetPath(path string) bool {
	if !s.loaded {
		return false
	}
	if !unsetByPath(s.contents, path) {
		return false
	}
	s.editRaw(path, nil, true)
	return true
}

// editRaw applies a mutation to the retained JSON document so the
// user's layout survives the next Write. On any edit failure the raw
// document is dropped and Write falls back to re-encoding the
// contents map, which stays authoritative.
func (s *Store) editRaw(path string, value any, remove bool) {
	if !s.editable || s.raw == nil {
		return
	}

	var (
		raw []byte
		err error
	)
	if remove {
		raw, err = sjson.DeleteBytes(s.raw, path)
	} else {
		raw, err = sjson.SetBytes(s.raw, path, value)
	}
	if err != nil {
		s.raw = nil
		return
	}
	s.raw = raw
}

// Write persists the contents, creating parent directories as needed.
// JSON stores write the edited original document; other formats and
// fresh files are encoded from the contents map.
func (s *Store) Write(ctx context.Context) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data := s.raw
	if !s.editable || len(data) == 0 {
		var err error
		data, err = s.codec.Encode(s.contents)
		if err != nil {
			return fmt.Errorf("encode %s: %w", s.path, err)
		}
	}

	dirMode := os.FileMode(0o755)
	if s.global {
		dirMode = 0o700
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, s.mode); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	if s.editable {
		s.raw = data
	}
	return nil
}
