package notify

import "strings"

// Sanitize escapes s for use inside a double-quoted AppleScript string literal.
// Backslashes are doubled first, then every double quote gets a backslash.
// It is not idempotent: apply it exactly once per value.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
