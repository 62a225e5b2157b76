package cmd

import (
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/rust-commits-go/config"
	"github.com/masmgr/rust-commits-go/internal/github"
	"github.com/masmgr/rust-commits-go/internal/output"
)

// MasterCmd returns the master command.
func MasterCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "GitHub API token (default: $GITHUB_API_TOKEN, $GITHUB_TOKEN or the credentials file)",
		},
		&cli.IntFlag{
			Name:  "window-days",
			Usage: "How many days back to list",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "Do not show page progress on stderr",
		},
	)

	return &cli.Command{
		Name:    "master",
		Aliases: []string{"m"},
		Usage:   "List bors merges from the GitHub commits API, oldest first",
		Flags:   flags,
		Action:  masterAction,
	}
}

func masterAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	token, err := config.ResolveToken(c.String("token"), ctx.Config)
	if err != nil {
		return err
	}

	opts := ctx.Config.FetcherOptions()
	opts.Logger = ctx.Logger.Named("github")
	opts.Now = func() time.Time { return ctx.Now }

	progress := newPageProgress(os.Stderr, !c.Bool("no-progress"))
	opts.OnPage = progress.Update

	fetcher := github.NewFetcher(ctx.Client, opts)
	since := fetcher.Since(ctx.Now)
	source, err := fetcher.InitialURL(since)
	if err != nil {
		progress.Stop()
		return err
	}

	commits, err := listCommits(c, fetcher.Lister(token), "commits API")
	progress.Stop()
	if err != nil {
		return err
	}
	ctx.Logger.Debug("listed commits", "count", len(commits), "authenticated", token != "")

	return writeCommitList(c, &output.CommitListReport{
		Source:      source.String(),
		Since:       &since,
		GeneratedAt: ctx.Now,
		Commits:     commits,
	})
}
