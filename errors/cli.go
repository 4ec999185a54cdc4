package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/sfdxkit/config"
	"github.com/randalmurphal/sfdxkit/project"
	"github.com/randalmurphal/sfdxkit/store"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// Messenger provides customizable error messages.
// Implement this interface to reword suggestions for your CLI.
type Messenger interface {
	// UnknownKeyMessage returns the message and suggestion for keys
	// outside the property registry. key may be empty when the name
	// could not be recovered from the error.
	UnknownKeyMessage(key string) (message, suggestion string)

	// InvalidValueMessage returns the message and suggestion for
	// values rejected by a property's validator.
	InvalidValueMessage() (message, suggestion string)

	// NoWorkspaceMessage returns the message and suggestion for
	// commands run outside a project workspace.
	NoWorkspaceMessage() (message, suggestion string)

	// MalformedFileMessage returns the message and suggestion for
	// settings files that cannot be decoded.
	MalformedFileMessage(path string) (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) UnknownKeyMessage(key string) (string, string) {
	if key == "" {
		return "Unknown config key.",
			"Run 'sfdx config:list' to see the keys you can set."
	}
	return fmt.Sprintf("Unknown config key: %s", key),
		"Run 'sfdx config:list' to see the keys you can set."
}

func (m DefaultMessenger) InvalidValueMessage() (string, string) {
	return "The value is not valid for this config key.",
		"Check the expected format for the key and try again."
}

func (m DefaultMessenger) NoWorkspaceMessage() (string, string) {
	return "This command must be run from within a Salesforce DX project.",
		"Change into a project directory, or create one with 'sfdx force:project:create'."
}

func (m DefaultMessenger) MalformedFileMessage(path string) (string, string) {
	return fmt.Sprintf("Could not parse the config file at %s", path),
		"Fix the file's syntax, or remove it to start fresh."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger Messenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m Messenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) Messenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// WrapResolveError wraps errors from configuration loading and
// queries with helpful guidance. Errors outside the module's taxonomy
// pass through unchanged.
func WrapResolveError(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	messenger := getMessenger(opts)

	var parseErr *store.ParseError
	switch {
	case errors.Is(err, config.ErrUnknownKey):
		msg, suggestion := messenger.UnknownKeyMessage(unknownKeyName(err))
		return &CLIError{
			Err:        err,
			Message:    msg,
			Suggestion: suggestion,
		}

	case errors.Is(err, config.ErrInvalidValue):
		msg, suggestion := messenger.InvalidValueMessage()
		return &CLIError{
			Err:        err,
			Message:    msg,
			Details:    err.Error(),
			Suggestion: suggestion,
		}

	case errors.Is(err, project.ErrNoWorkspace):
		msg, suggestion := messenger.NoWorkspaceMessage()
		return &CLIError{
			Err:        err,
			Message:    msg,
			Suggestion: suggestion,
		}

	case errors.As(err, &parseErr):
		msg, suggestion := messenger.MalformedFileMessage(parseErr.Path)
		return &CLIError{
			Err:        err,
			Message:    msg,
			Details:    parseErr.Err.Error(),
			Suggestion: suggestion,
		}
	}

	return err
}

// unknownKeyName recovers the key from an ErrUnknownKey chain, which
// always formats as "unknown config key: <key>".
func unknownKeyName(err error) string {
	msg := err.Error()
	marker := config.ErrUnknownKey.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return ""
}

// NewUnknownKeyError creates an error for a key outside the property
// registry, listing the keys the user can set.
func NewUnknownKeyError(key string, validKeys []string, opts ...Option) error {
	messenger := getMessenger(opts)
	msg, suggestion := messenger.UnknownKeyMessage(key)

	e := &CLIError{
		Err:        fmt.Errorf("%w: %s", config.ErrUnknownKey, key),
		Message:    msg,
		Suggestion: suggestion,
	}
	if len(validKeys) > 0 {
		e.Details = "Valid keys: " + strings.Join(validKeys, ", ")
	}
	return e
}

// NewNoWorkspaceError creates an error for commands that require a
// project workspace.
func NewNoWorkspaceError(opts ...Option) error {
	messenger := getMessenger(opts)
	msg, suggestion := messenger.NoWorkspaceMessage()
	return &CLIError{
		Err:        project.ErrNoWorkspace,
		Message:    msg,
		Suggestion: suggestion,
	}
}
