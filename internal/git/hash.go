package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

var (
	ErrInvalidSHA  = errors.New("invalid commit sha")
	ErrMissingTime = errors.New("missing commit time")
)

// ValidateSHA returns ErrInvalidSHA unless s is a full hex object id.
func ValidateSHA(s string) error {
	if !plumbing.IsHash(s) {
		if s == "" {
			return fmt.Errorf("%w: empty", ErrInvalidSHA)
		}
		return fmt.Errorf("%w: %q", ErrInvalidSHA, s)
	}
	return nil
}

// NormalizeSHA returns the lowercase form of a valid object id.
func NormalizeSHA(s string) (string, error) {
	if err := ValidateSHA(s); err != nil {
		return "", err
	}
	return plumbing.NewHash(s).String(), nil
}
