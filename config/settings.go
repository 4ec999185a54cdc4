package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/sfdxkit/crypto"
	"github.com/randalmurphal/sfdxkit/project"
	"github.com/randalmurphal/sfdxkit/schema"
	"github.com/randalmurphal/sfdxkit/store"
)

// SettingsOptions configures a settings layer.
type SettingsOptions struct {
	// Global selects the user-scoped file (~/.sfdx/sfdx-config.json).
	// When false the file lives under the enclosing project workspace,
	// and construction fails with project.ErrNoWorkspace if discovery
	// finds none.
	Global bool

	// Dir overrides the global config directory. It also decides where
	// the encryption keyfile lives. Defaults to ~/.sfdx.
	Dir string

	// ProjectDir is where workspace discovery starts for local
	// placement. Defaults to the working directory.
	ProjectDir string

	// Filename overrides the settings file name.
	Filename string

	// Registry validates keys and values on Set.
	// Defaults to schema.Default().
	Registry *schema.Registry

	// Logger receives deprecation warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// Settings is one configuration layer: a settings store checked
// against the property registry on every write, with transparent
// encryption for properties flagged Encrypted.
//
// Reads return the stored form; encrypted values stay ciphertext
// until Decrypt is called.
type Settings struct {
	store    *store.Store
	registry *schema.Registry
	logger   *slog.Logger

	keyDir string
	cipher *crypto.Cipher
}

// NewSettings resolves the layer's file placement and returns an
// unloaded Settings. Call Read before querying or mutating.
func NewSettings(opts SettingsOptions) (*Settings, error) {
	registry := opts.Registry
	if registry == nil {
		registry = schema.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	storeOpts := store.Options{
		Filename: opts.Filename,
		Global:   opts.Global,
		Dir:      opts.Dir,
	}
	if !opts.Global {
		root, err := project.FindRoot(opts.ProjectDir)
		if err != nil {
			return nil, err
		}
		storeOpts.RootDir = root
	}

	s, err := store.New(storeOpts)
	if err != nil {
		return nil, err
	}

	return &Settings{
		store:    s,
		registry: registry,
		logger:   logger,
		keyDir:   opts.Dir,
	}, nil
}

// Read loads the layer's file contents, replacing any prior state.
func (s *Settings) Read(ctx context.Context) error {
	return s.store.Read(ctx)
}

// Write persists the layer's contents.
func (s *Settings) Write(ctx context.Context) error {
	return s.store.Write(ctx)
}

// Get returns the stored value for a key, or nil if absent. Encrypted
// properties return ciphertext; use Decrypt for the plaintext.
func (s *Settings) Get(key string) any {
	return s.store.Get(key)
}

// Has reports whether the key is present in the layer's contents.
func (s *Settings) Has(key string) bool {
	return s.store.Has(key)
}

// Keys returns all keys in the layer in ascending order.
func (s *Settings) Keys() []string {
	return s.store.Keys()
}

// ToObject returns a deep copy of the layer's contents.
func (s *Settings) ToObject() map[string]any {
	return s.store.ToObject()
}

// Path returns the on-disk path of the layer's settings file.
func (s *Settings) Path() string {
	return s.store.Path()
}

// IsGlobal reports whether this layer is the user-scoped one.
func (s *Settings) IsGlobal() bool {
	return s.store.IsGlobal()
}

// Set validates and stores a value. Unknown keys fail with
// ErrUnknownKey, values rejected by the property's validator with
// ErrInvalidValue. Values for encrypted properties are sealed before
// they reach the store.
func (s *Settings) Set(key string, value any) error {
	prop, ok := s.registry.Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if prop.Input != nil && !prop.Input.Validate(value) {
		return fmt.Errorf("%w: %s", ErrInvalidValue, prop.Input.FailedMessage)
	}
	if prop.Deprecated {
		s.logger.Warn("setting deprecated config key",
			slog.String("key", key),
			slog.String("replaced_by", prop.ReplacedBy))
	}

	if prop.Encrypted {
		cipher, err := s.ensureCipher()
		if err != nil {
			return err
		}
		sealed, err := cipher.Encrypt(toString(value))
		if err != nil {
			return fmt.Errorf("encrypt %s: %w", key, err)
		}
		return s.store.Set(key, sealed)
	}

	return s.store.Set(key, value)
}

// Unset removes a key, reporting whether it was present.
func (s *Settings) Unset(key string) bool {
	return s.store.Unset(key)
}

// Decrypt returns the plaintext for an encrypted property, or the
// stored value's string form for plain ones. Absent keys yield "".
func (s *Settings) Decrypt(key string) (string, error) {
	value := s.store.Get(key)
	if value == nil {
		return "", nil
	}

	prop, ok := s.registry.Get(key)
	if !ok || !prop.Encrypted {
		return toString(value), nil
	}

	cipher, err := s.ensureCipher()
	if err != nil {
		return "", err
	}
	plaintext, err := cipher.Decrypt(toString(value))
	if err != nil {
		return "", fmt.Errorf("decrypt %s: %w", key, err)
	}
	return plaintext, nil
}

// ensureCipher loads the user's encryption key on first use. The
// keyfile is shared by all layers regardless of placement.
func (s *Settings) ensureCipher() (*crypto.Cipher, error) {
	if s.cipher != nil {
		return s.cipher, nil
	}

	dir := s.keyDir
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, err
		}
	}

	key, err := crypto.LoadOrCreateKey(dir)
	if err != nil {
		return nil, fmt.Errorf("load encryption key: %w", err)
	}
	cipher, err := crypto.New(key)
	if err != nil {
		return nil, err
	}

	s.cipher = cipher
	return cipher, nil
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
