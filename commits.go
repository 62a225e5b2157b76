// Package rustcommits lists the mainline integration commits of
// rust-lang/rust, the merges made by the bors bot.
//
// Two sources are available. MasterCommits walks the paginated GitHub
// commits API for a bounded window and returns the commits oldest first.
// CommitList reads the hosted aggregated feed in one request and returns
// it in the order it is served.
package rustcommits

import (
	"context"
	"net/http"

	"github.com/masmgr/rust-commits-go/internal/feed"
	"github.com/masmgr/rust-commits-go/internal/git"
	"github.com/masmgr/rust-commits-go/internal/github"
)

// Commit is one mainline integration commit.
type Commit = git.Commit

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer = github.Doer

// Options configures the paginated source.
type Options = github.Options

// FeedOptions configures the aggregated source.
type FeedOptions = feed.Options

// PageInfo is passed to Options.OnPage after each page.
type PageInfo = github.PageInfo

// Error types returned by both sources; match them with errors.As.
type (
	TransportError           = github.TransportError
	DecodeError              = github.DecodeError
	MalformedPaginationError = github.MalformedPaginationError
)

const (
	DefaultWindow = github.DefaultWindow
	FeedURL       = feed.DefaultURL
)

// MasterCommits lists bors merges on rust-lang/rust from the last 168 days,
// oldest first. An empty token sends unauthenticated requests. Any failure
// aborts the whole listing.
func MasterCommits(ctx context.Context, client Doer, token string) ([]Commit, error) {
	return github.NewFetcher(client, github.DefaultOptions()).Commits(ctx, token)
}

// CommitList returns the aggregated feed using http.DefaultClient.
func CommitList(ctx context.Context) ([]Commit, error) {
	return feed.NewClient(http.DefaultClient, feed.Options{}).Commits(ctx)
}

// NewFetcher returns a paginated source with custom options.
func NewFetcher(client Doer, opts Options) *github.Fetcher {
	return github.NewFetcher(client, opts)
}

// NewFeed returns an aggregated source with custom options.
func NewFeed(client Doer, opts FeedOptions) *feed.Client {
	return feed.NewClient(client, opts)
}
