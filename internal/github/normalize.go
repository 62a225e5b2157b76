package github

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/masmgr/rust-commits-go/internal/git"
)

// RawCommit is one element of the commits listing as returned by the API.
// Fields beyond the ones needed to identify a commit are ignored.
type RawCommit struct {
	SHA    string           `json:"sha"`
	Commit *RawCommitDetail `json:"commit"`
	PR     *int             `json:"pr,omitempty"`
}

// RawCommitDetail is the nested "commit" object.
type RawCommitDetail struct {
	Committer *RawSignature `json:"committer"`
}

// RawSignature is the nested "committer" object.
type RawSignature struct {
	Date time.Time `json:"date"`
}

// Date returns the committer date, or the zero time when absent.
func (r RawCommit) Date() time.Time {
	if r.Commit == nil || r.Commit.Committer == nil {
		return time.Time{}
	}
	return r.Commit.Committer.Date
}

func (r RawCommit) validate() error {
	if err := git.ValidateSHA(r.SHA); err != nil {
		return err
	}
	if r.Date().IsZero() {
		return fmt.Errorf("%w for %s", git.ErrMissingTime, r.SHA)
	}
	return nil
}

func (r RawCommit) toCommit() git.Commit {
	return git.Commit{
		SHA:  strings.ToLower(r.SHA),
		Time: r.Date().UTC(),
		PR:   r.PR,
	}
}

// decodePage parses one page of the commits listing. Any schema mismatch
// yields a *DecodeError carrying the raw body.
func decodePage(target string, body []byte) ([]RawCommit, error) {
	var records []RawCommit
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &DecodeError{URL: target, Body: string(body), Err: err}
	}
	if records == nil {
		return nil, &DecodeError{URL: target, Body: string(body), Err: ErrNotArray}
	}

	for i, r := range records {
		if err := r.validate(); err != nil {
			return nil, &DecodeError{URL: target, Body: string(body), Err: fmt.Errorf("record %d: %w", i, err)}
		}
	}

	return records, nil
}

// Normalize maps raw records to commits and reverses them. The API lists
// newest first; the result is oldest first.
func Normalize(records []RawCommit) []git.Commit {
	commits := make([]git.Commit, len(records))
	last := len(records) - 1
	for i, r := range records {
		commits[last-i] = r.toCommit()
	}
	return commits
}
