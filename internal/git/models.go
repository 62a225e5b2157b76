package git

import (
	"time"
)

// Commit is a single mainline integration commit.
type Commit struct {
	SHA  string    `json:"sha"`
	Time time.Time `json:"time"`
	PR   *int      `json:"pr,omitempty"`
}

// ShortSHA returns the first eight characters of the commit hash.
func (c Commit) ShortSHA() string {
	if len(c.SHA) <= 8 {
		return c.SHA
	}
	return c.SHA[:8]
}

// HasPR reports whether the source carried a pull request number.
func (c Commit) HasPR() bool {
	return c.PR != nil
}

// PRNumber returns the pull request number, or 0 when absent.
func (c Commit) PRNumber() int {
	if c.PR == nil {
		return 0
	}
	return *c.PR
}

// Validate checks that the commit has a well-formed hash and a timestamp.
func (c Commit) Validate() error {
	if err := ValidateSHA(c.SHA); err != nil {
		return err
	}
	if c.Time.IsZero() {
		return ErrMissingTime
	}
	return nil
}

// Normalize validates c, then lowercases its hash and moves its time to UTC.
func (c *Commit) Normalize() error {
	sha, err := NormalizeSHA(c.SHA)
	if err != nil {
		return err
	}
	if c.Time.IsZero() {
		return ErrMissingTime
	}
	c.SHA = sha
	c.Time = c.Time.UTC()
	return nil
}

// Span returns the oldest and newest commit times in the slice.
// Both are zero when commits is empty.
func Span(commits []Commit) (oldest, newest time.Time) {
	for i, c := range commits {
		if i == 0 || c.Time.Before(oldest) {
			oldest = c.Time
		}
		if i == 0 || c.Time.After(newest) {
			newest = c.Time
		}
	}
	return oldest, newest
}

// CountWithPR returns how many commits carry a pull request number.
func CountWithPR(commits []Commit) int {
	n := 0
	for _, c := range commits {
		if c.HasPR() {
			n++
		}
	}
	return n
}
