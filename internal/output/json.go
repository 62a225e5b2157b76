package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONCommitListWriter writes commit lists as JSON.
type JSONCommitListWriter struct{}

// JSONCommitListReport is the JSON output structure for a commit list.
type JSONCommitListReport struct {
	Source       string           `json:"source"`
	Since        *string          `json:"since,omitempty"`
	GeneratedAt  string           `json:"generatedAt"`
	TotalCommits int              `json:"totalCommits"`
	WithPR       int              `json:"withPR"`
	Oldest       string           `json:"oldest,omitempty"`
	Newest       string           `json:"newest,omitempty"`
	Items        []JSONCommitItem `json:"items"`
}

// JSONCommitItem is the JSON output structure for a single commit.
type JSONCommitItem struct {
	SHA  string `json:"sha"`
	Time string `json:"time"`
	PR   *int   `json:"pr,omitempty"`
}

// Write outputs the commit list as JSON.
func (w *JSONCommitListWriter) Write(report *CommitListReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)
	summary := summarize(report.Commits)

	items := make([]JSONCommitItem, len(commits))
	for i, c := range commits {
		items[i] = JSONCommitItem{
			SHA:  c.SHA,
			Time: c.Time.UTC().Format(time.RFC3339),
			PR:   c.PR,
		}
	}

	jsonReport := JSONCommitListReport{
		Source:       report.Source,
		Since:        formatSinceDate(report.Since),
		GeneratedAt:  report.GeneratedAt.UTC().Format(time.RFC3339),
		TotalCommits: summary.Total,
		WithPR:       summary.WithPR,
		Oldest:       formatTimePtr(summary.Oldest),
		Newest:       formatTimePtr(summary.Newest),
		Items:        items,
	}

	return writeJSON(jsonReport, options.OutputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	encoder := json.NewEncoder(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
