// Package alias provides named shortcuts for org usernames and other
// long values, persisted in a grouped settings file under the global
// config directory.
//
// Core types:
//   - Group: One named group of aliases inside the alias file
//   - Options: Placement and group selection for Open
//
// Example usage:
//
//	group, err := alias.Open(ctx, alias.Options{})
//	if err != nil {
//	    return err
//	}
//	if err := group.Set("dev", "dev-hub@example.com"); err != nil {
//	    return err
//	}
//	if err := group.Write(ctx); err != nil {
//	    return err
//	}
//	username := group.Resolve("dev") // "dev-hub@example.com"
package alias
