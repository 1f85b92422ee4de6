package extract

import "strings"

// Sanitize strips NUL characters and surrounding whitespace. It is
// idempotent: sanitizing already-sanitized text is a no-op.
func Sanitize(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\x00", ""))
}
