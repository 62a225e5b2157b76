package output

import (
	"time"

	"github.com/masmgr/rust-commits-go/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ CommitListWriter = (*ConsoleCommitListWriter)(nil)
	_ CommitListWriter = (*JSONCommitListWriter)(nil)
	_ CommitListWriter = (*CSVCommitListWriter)(nil)
	_ CommitListWriter = (*MarkdownCommitListWriter)(nil)
	_ CommitListWriter = (*CICommitListWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int // 0 writes every commit
	OutputPath string
}

// CommitListReport holds a fetched commit list and where it came from.
type CommitListReport struct {
	Source      string
	Since       *time.Time
	GeneratedAt time.Time
	Commits     []git.Commit
}

// CommitListWriter writes commit list reports.
type CommitListWriter interface {
	Write(report *CommitListReport, options OutputOptions) error
}

// NewCommitListWriter creates a report writer for the specified format.
func NewCommitListWriter(format OutputFormat) CommitListWriter {
	switch format {
	case FormatJSON:
		return &JSONCommitListWriter{}
	case FormatCSV:
		return &CSVCommitListWriter{}
	case FormatMarkdown:
		return &MarkdownCommitListWriter{}
	case FormatCI:
		return &CICommitListWriter{}
	default:
		return &ConsoleCommitListWriter{}
	}
}
