package git

import (
	"errors"
	"testing"
)

func TestValidateSHA(t *testing.T) {
	tests := []struct {
		name    string
		sha     string
		wantErr bool
	}{
		{name: "Lowercase", sha: testSHA},
		{name: "Uppercase", sha: "0123456789ABCDEF0123456789ABCDEF01234567"},
		{name: "Empty", sha: "", wantErr: true},
		{name: "Abbreviated", sha: "0123456", wantErr: true},
		{name: "Too long", sha: testSHA + "0", wantErr: true},
		{name: "Non hex", sha: "g123456789abcdef0123456789abcdef01234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSHA(tt.sha)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSHA) {
					t.Fatalf("ValidateSHA(%q) = %v, expected ErrInvalidSHA", tt.sha, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateSHA(%q) unexpected error: %v", tt.sha, err)
			}
		})
	}
}

func TestNormalizeSHA(t *testing.T) {
	got, err := NormalizeSHA("0123456789ABCDEF0123456789ABCDEF01234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != testSHA {
		t.Fatalf("NormalizeSHA() = %q, expected %q", got, testSHA)
	}

	if _, err := NormalizeSHA("nope"); err == nil {
		t.Fatal("expected error for invalid sha, got nil")
	}
}
