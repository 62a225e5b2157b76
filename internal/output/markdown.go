package output

import (
	"fmt"
	"strings"
)

// MarkdownCommitListWriter writes commit lists as Markdown.
type MarkdownCommitListWriter struct{}

// Write outputs the commit list as Markdown.
func (w *MarkdownCommitListWriter) Write(report *CommitListReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)
	summary := summarize(report.Commits)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	// Header
	fmt.Fprintln(out, "# Mainline Commits")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Source:** %s\n\n", escapeMarkdown(report.Source))
	label, value := dateRangeLabelAndValue(report.Since, report.GeneratedAt)
	fmt.Fprintf(out, "**%s:** %s\n\n", label, value)
	fmt.Fprintf(out, "**Total Commits:** %d (with PR: %d)\n\n", summary.Total, summary.WithPR)

	if len(commits) == 0 {
		fmt.Fprintln(out, "_No commits found._")
		return nil
	}

	// Table
	fmt.Fprintln(out, "| # | SHA | Time (UTC) | PR |")
	fmt.Fprintln(out, "|---|-----|------------|----|")
	for i, c := range commits {
		pr := formatPR(c)
		if pr == "" {
			pr = "-"
		}
		fmt.Fprintf(out, "| %d | `%s` | %s | %s |\n",
			i+1, c.SHA, c.Time.UTC().Format(reportDateTimeLayout), pr)
	}

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
