// Package feed reads the hosted, pre-aggregated list of mainline commits.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/masmgr/rust-commits-go/internal/git"
	"github.com/masmgr/rust-commits-go/internal/github"
)

// DefaultURL serves every bors merge with its time and pull request number.
const DefaultURL = "https://triage.rust-lang.org/bors-commit-list"

// Options configures a Client. Zero fields fall back to defaults.
type Options struct {
	URL       string
	UserAgent string
	Logger    hclog.Logger
}

// Client fetches the aggregated feed in a single request.
type Client struct {
	client github.Doer
	opts   Options
}

// NewClient creates a feed client that issues requests through client.
func NewClient(client github.Doer, opts Options) *Client {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = github.DefaultUserAgent
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	return &Client{client: client, opts: opts}
}

// Commits returns the feed in the order the source serves it.
func (c *Client) Commits(ctx context.Context) ([]git.Commit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	c.opts.Logger.Trace("requesting commit feed", "url", c.opts.URL)
	body, _, err := github.Execute(c.client, req)
	if err != nil {
		return nil, err
	}

	commits, err := decode(c.opts.URL, body)
	if err != nil {
		c.opts.Logger.Error("failed to decode commit feed", "url", c.opts.URL, "body", string(body))
		return nil, err
	}

	c.opts.Logger.Debug("fetched commit feed", "commits", len(commits))
	return commits, nil
}

// ListCommits implements git.CommitLister.
func (c *Client) ListCommits(ctx context.Context) ([]git.Commit, error) {
	return c.Commits(ctx)
}

func decode(target string, body []byte) ([]git.Commit, error) {
	var commits []git.Commit
	if err := json.Unmarshal(body, &commits); err != nil {
		return nil, &github.DecodeError{URL: target, Body: string(body), Err: err}
	}
	if commits == nil {
		return nil, &github.DecodeError{URL: target, Body: string(body), Err: github.ErrNotArray}
	}

	for i := range commits {
		if err := commits[i].Normalize(); err != nil {
			return nil, &github.DecodeError{URL: target, Body: string(body), Err: fmt.Errorf("record %d: %w", i, err)}
		}
	}

	return commits, nil
}

// Compile-time interface conformance check.
var _ git.CommitLister = (*Client)(nil)
