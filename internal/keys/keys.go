package keys

import "strings"

// StarterKey canonicalizes a display name into the key form used by the
// battle service and the roster storage: trimmed, lower-cased, spaces
// replaced with underscores.
func StarterKey(name string) string {
	s := strings.TrimSpace(name)
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}
