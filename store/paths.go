package store

import "strings"

// EscapeKey escapes path metacharacters so a raw key addresses a
// single path segment even when it contains dots or wildcards.
func EscapeKey(key string) string {
	if !strings.ContainsAny(key, `.*?\|#@`) {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitPath splits a dotted path into segments, honoring backslash
// escapes so "orgs.my\.alias" yields ["orgs", "my.alias"].
func splitPath(path string) []string {
	var parts []string
	var b strings.Builder
	escaped := false
	for _, r := range path {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '.':
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	parts = append(parts, b.String())
	return parts
}

// setByPath writes a value at a dotted path, creating intermediate
// maps as needed. Existing non-map intermediates are replaced.
func setByPath(m map[string]any, path string, value any) {
	parts := splitPath(path)
	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// getByPath reads the value at a dotted path and whether it exists.
func getByPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	value, ok := current[parts[len(parts)-1]]
	return value, ok
}

// unsetByPath deletes the value at a dotted path, reporting whether
// anything was removed. Empty intermediate maps are left in place.
func unsetByPath(m map[string]any, path string) bool {
	parts := splitPath(path)
	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return false
		}
		current = next
	}
	last := parts[len(parts)-1]
	if _, ok := current[last]; !ok {
		return false
	}
	delete(current, last)
	return true
}

// cloneMap creates a deep copy of a contents map.
func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		switch v := value.(type) {
		case map[string]any:
			dst[key] = cloneMap(v)
		case []any:
			dst[key] = cloneSlice(v)
		default:
			dst[key] = value
		}
	}
	return dst
}

// cloneSlice creates a deep copy of a slice value.
func cloneSlice(src []any) []any {
	if src == nil {
		return nil
	}
	dst := make([]any, len(src))
	for i, value := range src {
		switch v := value.(type) {
		case map[string]any:
			dst[i] = cloneMap(v)
		case []any:
			dst[i] = cloneSlice(v)
		default:
			dst[i] = value
		}
	}
	return dst
}
