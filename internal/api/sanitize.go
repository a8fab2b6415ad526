package api

import (
	"strings"
	"unicode/utf8"
)

// sanitizeLog strips control characters from a request-supplied value before
// it reaches the log, so a crafted path segment cannot forge log lines.
// Output is capped at 64 characters.
func sanitizeLog(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7F:
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	s = b.String()

	const maxLen = 64
	if utf8.RuneCountInString(s) > maxLen {
		cut, runes := 0, 0
		for cut = range s {
			if runes == maxLen {
				break
			}
			runes++
		}
		s = s[:cut] + "..."
	}
	return s
}
