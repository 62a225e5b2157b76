package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/masmgr/rust-commits-go/internal/git"
)

func intPtr(n int) *int { return &n }

func testReport() *CommitListReport {
	since := time.Date(2026, 5, 4, 8, 30, 15, 0, time.UTC)
	return &CommitListReport{
		Source:      "https://api.github.com/repos/rust-lang/rust/commits",
		Since:       &since,
		GeneratedAt: time.Date(2026, 10, 19, 8, 30, 15, 0, time.UTC),
		Commits: []git.Commit{
			{SHA: strings.Repeat("1", 40), Time: time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)},
			{SHA: strings.Repeat("2", 40), Time: time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC), PR: intPtr(1001)},
			{SHA: strings.Repeat("3", 40), Time: time.Date(2026, 10, 3, 10, 0, 0, 0, time.UTC), PR: intPtr(1002)},
		},
	}
}

// writeToTemp runs writer against a temp file and returns what it wrote.
func writeToTemp(t *testing.T, writer CommitListWriter, report *CommitListReport, top int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	if err := writer.Write(report, OutputOptions{Top: top, OutputPath: path}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := readTestFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(data)
}

func readTestFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Pipe", input: "a|b", expected: "a\\|b"},
		{name: "Asterisk", input: "a*b", expected: "a\\*b"},
		{name: "Underscore", input: "a_b", expected: "a\\_b"},
		{name: "Backtick", input: "a`b", expected: "a\\`b"},
		{name: "Multiple specials", input: "a|b*c_d", expected: "a\\|b\\*c\\_d"},
		{name: "No specials", input: "plain text", expected: "plain text"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := escapeMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("escapeMarkdown(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatPR(t *testing.T) {
	if got := formatPR(git.Commit{}); got != "" {
		t.Errorf("formatPR(no PR) = %q, expected empty", got)
	}
	if got := formatPR(git.Commit{PR: intPtr(42)}); got != "#42" {
		t.Errorf("formatPR(42) = %q, expected #42", got)
	}
}
