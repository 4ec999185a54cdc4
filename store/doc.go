// Package store provides file-backed settings stores for Salesforce DX
// configuration.
//
// A Store maps keys to scalar values persisted in a single file. Global
// stores live under the user config directory (~/.sfdx), local stores
// under <projectRoot>/.sfdx. The codec is chosen by file extension:
// JSON (with JSONC comment tolerance) by default, YAML and TOML by
// extension.
//
// Core types:
//   - Store: One settings file with read, query, and write operations
//   - Options: Placement and naming for a store
//   - ParseError: A file that exists but cannot be decoded
//
// Example usage:
//
//	st, err := store.New(store.Options{Global: true})
//	if err != nil { ... }
//	if err := st.Read(ctx); err != nil { ... }
//
//	st.Set("defaultusername", "alice@example.com")
//	err = st.Write(ctx)
//
// JSON stores edit the retained on-disk document in place, so key
// order and indentation chosen by the user survive a Set or Unset.
package store
