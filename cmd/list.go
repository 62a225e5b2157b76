package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/rust-commits-go/internal/feed"
	"github.com/masmgr/rust-commits-go/internal/output"
)

// ListCmd returns the list command.
func ListCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "List bors merges from the aggregated commit feed",
		Flags:   commonFlags(),
		Action:  listAction,
	}
}

func listAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	opts := ctx.Config.FeedOptions()
	opts.Logger = ctx.Logger.Named("feed")

	commits, err := listCommits(c, feed.NewClient(ctx.Client, opts), "commit feed")
	if err != nil {
		return err
	}

	return writeCommitList(c, &output.CommitListReport{
		Source:      opts.URL,
		GeneratedAt: ctx.Now,
		Commits:     commits,
	})
}
