package output

import "testing"

func TestNewCommitListWriter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
		check  func(CommitListWriter) bool
	}{
		{name: "Console", format: FormatConsole, check: func(w CommitListWriter) bool { _, ok := w.(*ConsoleCommitListWriter); return ok }},
		{name: "JSON", format: FormatJSON, check: func(w CommitListWriter) bool { _, ok := w.(*JSONCommitListWriter); return ok }},
		{name: "CSV", format: FormatCSV, check: func(w CommitListWriter) bool { _, ok := w.(*CSVCommitListWriter); return ok }},
		{name: "Markdown", format: FormatMarkdown, check: func(w CommitListWriter) bool { _, ok := w.(*MarkdownCommitListWriter); return ok }},
		{name: "CI", format: FormatCI, check: func(w CommitListWriter) bool { _, ok := w.(*CICommitListWriter); return ok }},
		{name: "Unknown defaults to Console", format: "unknown", check: func(w CommitListWriter) bool { _, ok := w.(*ConsoleCommitListWriter); return ok }},
		{name: "Empty defaults to Console", format: "", check: func(w CommitListWriter) bool { _, ok := w.(*ConsoleCommitListWriter); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewCommitListWriter(tt.format)
			if writer == nil {
				t.Fatal("NewCommitListWriter returned nil")
			}
			if !tt.check(writer) {
				t.Errorf("NewCommitListWriter(%q) returned %T", tt.format, writer)
			}
		})
	}
}
