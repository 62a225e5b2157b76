package git

import "context"

// MockCommitLister is a test double for CommitLister.
// It allows tests to provide predefined commits without any network access.
type MockCommitLister struct {
	Commits []Commit
	Error   error
	Calls   int
}

// NewMockCommitLister creates a new MockCommitLister with the given data.
func NewMockCommitLister(commits []Commit, err error) *MockCommitLister {
	return &MockCommitLister{
		Commits: commits,
		Error:   err,
	}
}

// ListCommits returns the predefined commits or error.
func (m *MockCommitLister) ListCommits(_ context.Context) ([]Commit, error) {
	m.Calls++
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Commits, nil
}

// Compile-time interface conformance check.
var _ CommitLister = (*MockCommitLister)(nil)
