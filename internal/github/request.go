package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// requestSpec is an immutable description of one page request.
// Every page gets a fresh *http.Request built from it.
type requestSpec struct {
	method string
	url    *url.URL
	header http.Header
}

func newRequestSpec(target *url.URL, userAgent, token string) requestSpec {
	header := http.Header{}
	header.Set("User-Agent", userAgent)
	if token != "" {
		header.Set("Authorization", "token "+token)
	}
	return requestSpec{method: http.MethodGet, url: target, header: header}
}

// withURL returns a copy of s that differs only in its target.
func (s requestSpec) withURL(target *url.URL) requestSpec {
	return requestSpec{method: s.method, url: target, header: s.header.Clone()}
}

func (s requestSpec) authenticated() bool {
	return s.header.Get("Authorization") != ""
}

// withoutAuth returns a copy of s with the Authorization header removed.
func (s requestSpec) withoutAuth() requestSpec {
	next := s.withURL(s.url)
	next.header.Del("Authorization")
	return next
}

func (s requestSpec) build(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, s.method, s.url.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header = s.header.Clone()
	return req, nil
}

// hostMatcher restricts which continuation hosts may receive the
// credential. An empty matcher places no restriction.
type hostMatcher []string

func newHostMatcher(patterns []string) hostMatcher {
	m := make(hostMatcher, len(patterns))
	for i, p := range patterns {
		m[i] = strings.ToLower(p)
	}
	return m
}

func (m hostMatcher) restricted() bool {
	return len(m) > 0
}

// allows reports whether a request to u, reached from origin, may carry
// the credential. Patterns match the full host including any port. A
// restricted matcher never lets the credential leave https.
func (m hostMatcher) allows(origin, u *url.URL) bool {
	if !m.restricted() {
		return true
	}
	if strings.EqualFold(origin.Scheme, "https") && !strings.EqualFold(u.Scheme, "https") {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, pattern := range m {
		if matched, _ := doublestar.Match(pattern, host); matched {
			return true
		}
	}
	return false
}

func sameHost(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(a.Host, b.Host)
}

// ValidateHostPatterns reports the first pattern that is not a valid glob.
func ValidateHostPatterns(patterns []string) error {
	for _, p := range patterns {
		if p == "" || !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid auth host pattern %q", p)
		}
	}
	return nil
}

// Execute performs req and returns the full body of a 2xx response.
// Transport failures and any other status yield a *TransportError; the
// body of a failed response is never read.
func Execute(client Doer, req *http.Request) ([]byte, http.Header, error) {
	target := req.URL.String()

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.Header, &TransportError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        ErrUnexpectedStatus,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.Header, &TransportError{URL: target, Err: err}
	}

	return body, resp.Header, nil
}
