package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleCommitListWriter writes commit lists as an aligned table.
type ConsoleCommitListWriter struct{}

// Write outputs the commit list to the console, or to OutputPath when set.
func (w *ConsoleCommitListWriter) Write(report *CommitListReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)
	summary := summarize(report.Commits)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.New(color.FgGreen).Fprintln(out, "Mainline Commits")
	fmt.Fprintf(out, "Source: %s\n", report.Source)
	label, value := dateRangeLabelAndValue(report.Since, report.GeneratedAt)
	fmt.Fprintf(out, "%s: %s\n", label, value)
	fmt.Fprintf(out, "Total commits: %d (with PR: %d)\n", summary.Total, summary.WithPR)
	if summary.Oldest != nil {
		fmt.Fprintf(out, "Oldest: %s  Newest: %s\n",
			summary.Oldest.UTC().Format(reportDateTimeLayout),
			summary.Newest.UTC().Format(reportDateTimeLayout))
	}
	fmt.Fprintln(out)

	if len(commits) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No commits found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSHA\tTime (UTC)\tPR")
	for i, c := range commits {
		pr := formatPR(c)
		if pr == "" {
			pr = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			i+1,
			c.ShortSHA(),
			c.Time.UTC().Format(reportDateTimeLayout),
			pr,
		)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if len(commits) < len(report.Commits) {
		fmt.Fprintf(out, "\n(showing %d of %d)\n", len(commits), len(report.Commits))
	}
	return nil
}
