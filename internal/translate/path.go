package translate

import "strings"

// pathSpecials are the characters gjson and sjson paths treat specially.
// Keys come from user documents and table data, so they are escaped before
// being joined into a path.
const pathSpecials = `.|#@*?\`

// escapePath escapes a raw object key for use in a gjson/sjson path.
func escapePath(key string) string {
	if !strings.ContainsAny(key, pathSpecials) {
		return key
	}

	var b strings.Builder
	for _, r := range key {
		if strings.ContainsRune(pathSpecials, r) {
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}

// joinPath builds a dotted path from raw object keys.
func joinPath(keys ...string) string {
	escaped := make([]string, 0, len(keys))
	for _, key := range keys {
		escaped = append(escaped, escapePath(key))
	}

	return strings.Join(escaped, ".")
}
