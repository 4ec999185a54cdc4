package store

import "errors"

// ErrNotLoaded indicates a mutation or write was attempted before Read.
// Writing a store that was never read could clobber an existing file.
var ErrNotLoaded = errors.New("store not loaded")

// ParseError reports a settings file that exists but cannot be decoded.
// Resolution treats this as fatal: a malformed file is a user error that
// must surface, not an empty layer.
type ParseError struct {
	Path string // File that failed to parse
	Err  error  // Underlying decode error
}

func (e *ParseError) Error() string {
	return "parse " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
