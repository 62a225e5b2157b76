package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/masmgr/rust-commits-go/internal/git"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultOwner     = "rust-lang"
	DefaultRepo      = "rust"
	DefaultAuthor    = "bors"
	DefaultUserAgent = "rust-lang-commit-lister"

	// DefaultWindow is how far back the listing reaches.
	DefaultWindow = 168 * 24 * time.Hour
	// PageSize is the number of commits requested per page; 100 is the API maximum.
	PageSize = 100

	sinceLayout = "2006-01-02T15:04:05Z"
)

// Options configures a Fetcher. Zero fields fall back to the defaults above.
type Options struct {
	BaseURL   string
	Owner     string
	Repo      string
	Author    string
	UserAgent string
	Window    time.Duration
	PageSize  int

	// AuthHosts restricts which hosts receive the credential when a
	// continuation link leaves the initial host. Patterns are globs over
	// host[:port]. Empty sends the credential on every continuation.
	AuthHosts []string

	Now    func() time.Time
	Logger hclog.Logger
	OnPage func(PageInfo)
}

// PageInfo describes one fetched page.
type PageInfo struct {
	Page    int
	Records int
	Total   int
	URL     string
}

// DefaultOptions returns the options used to list rust-lang/rust merges by bors.
func DefaultOptions() Options {
	return Options{
		BaseURL:   DefaultBaseURL,
		Owner:     DefaultOwner,
		Repo:      DefaultRepo,
		Author:    DefaultAuthor,
		UserAgent: DefaultUserAgent,
		Window:    DefaultWindow,
		PageSize:  PageSize,
		Now:       time.Now,
		Logger:    hclog.NewNullLogger(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BaseURL == "" {
		o.BaseURL = d.BaseURL
	}
	if o.Owner == "" {
		o.Owner = d.Owner
	}
	if o.Repo == "" {
		o.Repo = d.Repo
	}
	if o.Author == "" {
		o.Author = d.Author
	}
	if o.UserAgent == "" {
		o.UserAgent = d.UserAgent
	}
	if o.Window <= 0 {
		o.Window = d.Window
	}
	if o.PageSize <= 0 {
		o.PageSize = d.PageSize
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}

// Fetcher lists commits from the GitHub commits API, following pagination
// links until the listing is exhausted. It holds no per-call state and is
// safe for concurrent use if the underlying client is.
type Fetcher struct {
	client Doer
	opts   Options
}

// NewFetcher creates a fetcher that issues requests through client.
func NewFetcher(client Doer, opts Options) *Fetcher {
	return &Fetcher{client: client, opts: opts.withDefaults()}
}

// Since returns the lower time bound for a query issued at now.
func (f *Fetcher) Since(now time.Time) time.Time {
	return now.Add(-f.opts.Window).UTC().Truncate(time.Second)
}

// InitialURL returns the first page URL for the given lower bound.
func (f *Fetcher) InitialURL(since time.Time) (*url.URL, error) {
	base, err := url.Parse(strings.TrimSuffix(f.opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	u := base.JoinPath("repos", f.opts.Owner, f.opts.Repo, "commits")
	q := url.Values{}
	q.Set("author", f.opts.Author)
	q.Set("since", since.UTC().Format(sinceLayout))
	q.Set("per_page", strconv.Itoa(f.opts.PageSize))
	u.RawQuery = q.Encode()

	return u, nil
}

// Fetch retrieves every page of the listing and returns the raw records in
// the order the API produced them (newest first). On any error no records
// are returned. An empty token sends unauthenticated requests.
func (f *Fetcher) Fetch(ctx context.Context, token string) ([]RawCommit, error) {
	log := f.opts.Logger

	since := f.Since(f.opts.Now())
	first, err := f.InitialURL(since)
	if err != nil {
		return nil, err
	}

	trusted := newHostMatcher(f.opts.AuthHosts)
	origin := newRequestSpec(first, f.opts.UserAgent, token)
	spec := origin
	visited := map[string]bool{first.String(): true}
	log.Trace("listing commits", "author", f.opts.Author, "since", since.Format(sinceLayout), "authenticated", token != "")

	records := []RawCommit{}

	for page := 1; ; page++ {
		req, err := spec.build(ctx)
		if err != nil {
			return nil, err
		}

		log.Trace("requesting", "url", spec.url.String(), "page", page)
		body, header, err := Execute(f.client, req)
		if err != nil {
			return nil, err
		}

		part, err := decodePage(spec.url.String(), body)
		if err != nil {
			log.Error("failed to decode commits page", "url", spec.url.String(), "body", string(body))
			return nil, err
		}
		records = append(records, part...)

		if f.opts.OnPage != nil {
			f.opts.OnPage(PageInfo{Page: page, Records: len(part), Total: len(records), URL: spec.url.String()})
		}

		link := header.Get("Link")
		if link != "" {
			log.Trace("considering link header", "link", link)
		}

		next, err := nextLink(link, spec.url)
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}

		if visited[next.String()] {
			return nil, &MalformedPaginationError{Link: link, Err: errLinkCycle}
		}
		visited[next.String()] = true

		log.Trace("resolved next page", "url", next.String())
		spec = f.continuation(origin, trusted, next)
	}

	return records, nil
}

// continuation derives the request for next from the initial one, so the
// credential decision is made afresh on every hop.
func (f *Fetcher) continuation(origin requestSpec, trusted hostMatcher, next *url.URL) requestSpec {
	spec := origin.withURL(next)
	if !spec.authenticated() || sameHost(origin.url, next) {
		return spec
	}
	if !trusted.allows(origin.url, next) {
		f.opts.Logger.Warn("dropping credential for untrusted pagination host", "host", next.Host)
		return spec.withoutAuth()
	}
	f.opts.Logger.Warn("sending credential to another pagination host", "from", origin.url.Host, "to", next.Host)
	return spec
}

// Commits fetches the full listing and returns it oldest first.
func (f *Fetcher) Commits(ctx context.Context, token string) ([]git.Commit, error) {
	records, err := f.Fetch(ctx, token)
	if err != nil {
		return nil, err
	}
	return Normalize(records), nil
}

// Lister binds a credential to the fetcher so it satisfies git.CommitLister.
func (f *Fetcher) Lister(token string) git.CommitLister {
	return &tokenLister{fetcher: f, token: token}
}

type tokenLister struct {
	fetcher *Fetcher
	token   string
}

func (l *tokenLister) ListCommits(ctx context.Context) ([]git.Commit, error) {
	return l.fetcher.Commits(ctx, l.token)
}

// Compile-time interface conformance check.
var _ git.CommitLister = (*tokenLister)(nil)
