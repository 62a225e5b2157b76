package output

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/masmgr/rust-commits-go/internal/git"
)

const (
	reportDateLayout     = "2006-01-02"
	reportDateTimeLayout = "2006-01-02 15:04:05"
)

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

func dateRangeLabelAndValue(since *time.Time, until time.Time) (string, string) {
	if since != nil {
		return "Period", since.Format(reportDateLayout) + " to " + until.Format(reportDateLayout)
	}
	return "As of", until.Format(reportDateLayout)
}

func formatSinceDate(since *time.Time) *string {
	if since == nil {
		return nil
	}
	formatted := since.UTC().Format(time.RFC3339)
	return &formatted
}

// listSummary holds aggregate figures over the full commit list,
// independent of any row limit.
type listSummary struct {
	Total  int
	WithPR int
	Oldest *time.Time
	Newest *time.Time
}

func summarize(commits []git.Commit) listSummary {
	s := listSummary{Total: len(commits), WithPR: git.CountWithPR(commits)}
	if len(commits) > 0 {
		oldest, newest := git.Span(commits)
		s.Oldest, s.Newest = &oldest, &newest
	}
	return s
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatPR(c git.Commit) string {
	if !c.HasPR() {
		return ""
	}
	return "#" + strconv.Itoa(c.PRNumber())
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
