package errors

import (
	"errors"

	"github.com/randalmurphal/sfdxkit/config"
	"github.com/randalmurphal/sfdxkit/project"
	"github.com/randalmurphal/sfdxkit/store"
)

// IsUnknownKey checks if an error means a key is not in the property
// registry.
func IsUnknownKey(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, config.ErrUnknownKey)
}

// IsInvalidValue checks if an error means a value was rejected by a
// property's validator.
func IsInvalidValue(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, config.ErrInvalidValue)
}

// IsNoWorkspace checks if an error means no project workspace
// encloses the directory.
func IsNoWorkspace(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, project.ErrNoWorkspace)
}

// IsParseError checks if an error means a settings file could not be
// decoded.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var parseErr *store.ParseError
	return errors.As(err, &parseErr)
}
