package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVCommitListWriter writes commit lists as CSV.
type CSVCommitListWriter struct{}

// Write outputs the commit list as CSV.
func (w *CSVCommitListWriter) Write(report *CommitListReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"SHA", "Time", "PR"}); err != nil {
		return err
	}

	for _, c := range commits {
		pr := ""
		if c.HasPR() {
			pr = strconv.Itoa(c.PRNumber())
		}
		row := []string{
			c.SHA,
			c.Time.UTC().Format(time.RFC3339),
			pr,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(out), file, nil
}
