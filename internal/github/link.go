package github

import (
	"errors"
	"net/url"
	"strings"
)

// nextRel is the only Link relation the fetch loop follows.
const nextRel = `rel="next"`

var (
	errMissingTarget = errors.New("target is not enclosed in angle brackets")
	errEmptyTarget   = errors.New("empty target")
	errSelfLink      = errors.New("next page points at the current page")
	errLinkCycle     = errors.New("next page was already fetched")
)

// nextLink extracts the rel="next" target from a Link header value.
// It returns nil when no entry carries that relation. Relative targets are
// resolved against base.
func nextLink(header string, base *url.URL) (*url.URL, error) {
	if strings.TrimSpace(header) == "" {
		return nil, nil
	}

	for _, entry := range splitLinkEntries(header) {
		target, params, err := splitLinkEntry(entry)
		if !hasRel(params, nextRel) {
			continue
		}
		if err != nil {
			return nil, &MalformedPaginationError{Link: header, Err: err}
		}
		if target == "" {
			return nil, &MalformedPaginationError{Link: header, Err: errEmptyTarget}
		}

		u, err := url.Parse(target)
		if err != nil {
			return nil, &MalformedPaginationError{Link: header, Err: err}
		}
		if base != nil {
			u = base.ResolveReference(u)
			if u.String() == base.String() {
				return nil, &MalformedPaginationError{Link: header, Err: errSelfLink}
			}
		}
		return u, nil
	}

	return nil, nil
}

// splitLinkEntries splits a Link header on commas that are outside both
// the <...> target and quoted parameter values.
func splitLinkEntries(header string) []string {
	var entries []string
	var inTarget, inQuote bool
	start := 0

	for i := 0; i < len(header); i++ {
		switch c := header[i]; {
		case c == '<' && !inQuote:
			inTarget = true
		case c == '>' && !inQuote:
			inTarget = false
		case c == '"' && !inTarget:
			inQuote = !inQuote
		case c == ',' && !inTarget && !inQuote:
			entries = append(entries, header[start:i])
			start = i + 1
		}
	}

	return append(entries, header[start:])
}

// splitLinkEntry separates "<target>; params" into its parts. params is
// returned even when the target is malformed so the caller can decide
// whether the entry matters.
func splitLinkEntry(entry string) (string, string, error) {
	entry = strings.TrimSpace(entry)
	if !strings.HasPrefix(entry, "<") {
		_, params, _ := strings.Cut(entry, ";")
		return "", params, errMissingTarget
	}

	end := strings.IndexByte(entry, '>')
	if end < 0 {
		_, params, _ := strings.Cut(entry, ";")
		return "", params, errMissingTarget
	}

	return strings.TrimSpace(entry[1:end]), entry[end+1:], nil
}

func hasRel(params, rel string) bool {
	for _, p := range strings.Split(params, ";") {
		if strings.TrimSpace(p) == rel {
			return true
		}
	}
	return false
}
