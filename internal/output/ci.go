package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// CICommitListWriter writes commit lists as NDJSON (one JSON object per line) for CI pipelines.
type CICommitListWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type         string `json:"type"`
	Source       string `json:"source"`
	TotalCommits int    `json:"totalCommits"`
	WithPR       int    `json:"withPR"`
	Oldest       string `json:"oldest,omitempty"`
	Newest       string `json:"newest,omitempty"`
}

// CICommitEntry represents a single commit in CI output.
type CICommitEntry struct {
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Time string `json:"time"`
	PR   *int   `json:"pr,omitempty"`
}

// Write outputs the commit list as NDJSON.
func (w *CICommitListWriter) Write(report *CommitListReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)
	summary := summarize(report.Commits)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writeNDJSONLine(out, CISummary{
		Type:         "summary",
		Source:       report.Source,
		TotalCommits: summary.Total,
		WithPR:       summary.WithPR,
		Oldest:       formatTimePtr(summary.Oldest),
		Newest:       formatTimePtr(summary.Newest),
	}); err != nil {
		return err
	}

	for _, c := range commits {
		entry := CICommitEntry{
			Type: "commit",
			SHA:  c.SHA,
			Time: c.Time.UTC().Format(time.RFC3339),
			PR:   c.PR,
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
