package git

import "context"

// CommitLister defines the interface for retrieving mainline commits.
// Both the paginated API fetcher and the aggregated feed satisfy it.
type CommitLister interface {
	// ListCommits returns the commits in the order the implementation documents.
	ListCommits(ctx context.Context) ([]Commit, error)
}
