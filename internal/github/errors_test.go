package github

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateBody(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		maxLen int
		want   string
	}{
		{name: "Short body unchanged", body: "[]", maxLen: 10, want: "[]"},
		{name: "Exact length unchanged", body: "abcdefghij", maxLen: 10, want: "abcdefghij"},
		{name: "ASCII cut", body: "abcdefghijkl", maxLen: 10, want: "abcdefg..."},
		// "é" is two bytes; the cut would land inside the fourth one.
		{name: "Backs off to rune start", body: "ééééééé", maxLen: 10, want: "ééé..."},
		{name: "Four-byte runes", body: "🦀🦀🦀", maxLen: 10, want: "🦀..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateBody(tt.body, tt.maxLen)
			if got != tt.want {
				t.Fatalf("truncateBody(%q, %d) = %q, want %q", tt.body, tt.maxLen, got, tt.want)
			}
			if len(got) > tt.maxLen {
				t.Fatalf("len = %d, want <= %d", len(got), tt.maxLen)
			}
		})
	}
}

func TestDecodeError_ValidUTF8(t *testing.T) {
	err := &DecodeError{URL: "https://api.github.com/x", Body: strings.Repeat("ж", 400), Err: ErrNotArray}
	msg := err.Error()
	if !utf8.ValidString(msg) {
		t.Fatalf("Error() is not valid UTF-8: %q", msg)
	}
	if !strings.HasSuffix(msg, "...") {
		t.Fatalf("Error() = %q, want truncated body", msg)
	}
}
