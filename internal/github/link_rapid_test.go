package github

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var linkRelations = []string{"next", "prev", "first", "last"}

// --- Generators ---

func genLinkHeader() *rapid.Generator[[]string] {
	return rapid.Custom(func(t *rapid.T) []string {
		count := rapid.IntRange(0, len(linkRelations)).Draw(t, "count")
		perm := rapid.Permutation(linkRelations).Draw(t, "perm")
		return perm[:count]
	})
}

func buildLinkHeader(rels []string) string {
	parts := make([]string, len(rels))
	for i, rel := range rels {
		parts[i] = fmt.Sprintf(`<https://api.github.com/x?page=%d&rel=%s>; rel="%s"`, i+2, rel, rel)
	}
	return strings.Join(parts, ", ")
}

// --- Property Tests ---

func TestRapidNextLink_OnlyNextRelationMatches(t *testing.T) {
	base, _ := url.Parse("https://api.github.com/x?page=1")

	rapid.Check(t, func(t *rapid.T) {
		rels := genLinkHeader().Draw(t, "rels")
		header := buildLinkHeader(rels)

		got, err := nextLink(header, base)
		if err != nil {
			t.Fatalf("nextLink(%q) error: %v", header, err)
		}

		hasNext := false
		for _, rel := range rels {
			if rel == "next" {
				hasNext = true
			}
		}

		if !hasNext {
			if got != nil {
				t.Fatalf("nextLink(%q) = %q, want nil", header, got)
			}
			return
		}
		if got == nil {
			t.Fatalf("nextLink(%q) = nil, want next target", header)
		}
		if got.Query().Get("rel") != "next" {
			t.Fatalf("nextLink(%q) = %q, picked the wrong entry", header, got)
		}
	})
}
