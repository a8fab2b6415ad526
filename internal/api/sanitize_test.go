package api

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeLog(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string", "hello world", "hello world"},
		{"newline injection", "7\nFAKE LOG: hacked", "7\\nFAKE LOG: hacked"},
		{"carriage return", "user\rEVIL", "user\\rEVIL"},
		{"tab", "value\there", "value\\there"},
		{"CRLF", "line\r\ninjection", "line\\r\\ninjection"},
		{"null byte", "zero\x00byte", "zerobyte"},
		{"other control chars", "bell\x07char", "bellchar"},
		{"empty string", "", ""},
		{"unicode kept", "n\u00famero", "n\u00famero"},
		{"truncation", strings.Repeat("a", 300), strings.Repeat("a", 64) + "..."},
		{"exactly 64", strings.Repeat("b", 64), strings.Repeat("b", 64)},
		{"truncation keeps runes whole", strings.Repeat("a", 63) + "\u00e9\u00e9", strings.Repeat("a", 63) + "\u00e9..."},
		{"exactly 64 runes", strings.Repeat("\u00e9", 64), strings.Repeat("\u00e9", 64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeLog(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeLog(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("sanitizeLog(%q) produced invalid UTF-8 %q", tt.input, got)
			}
		})
	}
}
