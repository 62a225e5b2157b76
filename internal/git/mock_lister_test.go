package git

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockCommitLister_ListCommits(t *testing.T) {
	expected := []Commit{
		{SHA: testSHA, Time: time.Now()},
	}

	t.Run("returns commits", func(t *testing.T) {
		lister := NewMockCommitLister(expected, nil)

		commits, err := lister.ListCommits(context.Background())

		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if len(commits) != len(expected) {
			t.Errorf("expected %d commits, got %d", len(expected), len(commits))
		}
		if lister.Calls != 1 {
			t.Errorf("expected 1 call, got %d", lister.Calls)
		}
	})

	t.Run("returns error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		lister := NewMockCommitLister(expected, expectedErr)

		commits, err := lister.ListCommits(context.Background())

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if commits != nil {
			t.Errorf("expected no commits on error, got %d", len(commits))
		}
	})
}
