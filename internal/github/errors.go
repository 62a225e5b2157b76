package github

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrUnexpectedStatus is wrapped by TransportError for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrNotArray is wrapped by DecodeError when the payload is not a JSON array.
	ErrNotArray = errors.New("response body is not a JSON array")
)

// TransportError reports a failed request or a non-success HTTP status.
// StatusCode is zero when no response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		status := e.Status
		if status == "" {
			status = strconv.Itoa(e.StatusCode)
		}
		return fmt.Sprintf("GET %s: %s", e.URL, status)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that does not match the expected schema.
// Body holds the raw payload for diagnosis.
type DecodeError struct {
	URL  string
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v: body: %s", e.URL, e.Err, truncateBody(e.Body, 512))
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MalformedPaginationError reports a rel="next" Link entry whose target
// cannot be parsed.
type MalformedPaginationError struct {
	Link string
	Err  error
}

func (e *MalformedPaginationError) Error() string {
	return fmt.Sprintf("malformed pagination link %q: %v", e.Link, e.Err)
}

func (e *MalformedPaginationError) Unwrap() error {
	return e.Err
}

// truncateBody shortens body to at most maxLen bytes without splitting
// a UTF-8 sequence.
func truncateBody(body string, maxLen int) string {
	if len(body) <= maxLen {
		return body
	}
	cut := maxLen - 3
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "..."
}
