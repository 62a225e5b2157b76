package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/rust-commits-go/internal/git"
	"github.com/masmgr/rust-commits-go/internal/output"
)

// listCommits runs lister with the command's context. source names the
// listing in the returned error.
func listCommits(c *cli.Context, lister git.CommitLister, source string) ([]git.Commit, error) {
	commits, err := lister.ListCommits(c.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return commits, nil
}

func writeCommitList(c *cli.Context, report *output.CommitListReport) error {
	opts := OutputOptions(c)
	writer := output.NewCommitListWriter(opts.Format)
	return writer.Write(report, opts)
}
