// Package errors provides CLI error presentation for configuration
// failures: user-friendly messages, actionable suggestions, and
// predicates over the module's error taxonomy.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - Messenger: Interface for customizing error messages
//
// Predicates for the module's error kinds:
//   - IsUnknownKey: Key is not in the property registry
//   - IsInvalidValue: Value rejected by the property's validator
//   - IsNoWorkspace: No project workspace encloses the directory
//   - IsParseError: A settings file could not be decoded
//
// Example usage:
//
//	agg, err := config.Load(ctx)
//	if err != nil {
//	    return errors.WrapResolveError(err)
//	}
//
//	// Customize the wording for your CLI
//	type MyMessenger struct{ errors.DefaultMessenger }
//	func (MyMessenger) NoWorkspaceMessage() (string, string) {
//	    return "Not inside a project.", "Run 'myapp project init' first."
//	}
//	wrapped := errors.WrapResolveError(err, errors.WithMessenger(MyMessenger{}))
//
//	// Check error kinds
//	if errors.IsNoWorkspace(err) {
//	    // Handle running outside a project
//	}
package errors
