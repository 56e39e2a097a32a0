package beerclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound matches a StatusError carrying 404.
	ErrNotFound = errors.New("beer not found")
	// ErrMissingLocation is returned when a create response has no Location header.
	ErrMissingLocation = errors.New("create response missing Location header")
	// ErrMissingID is returned when a by-id operation receives the zero UUID.
	ErrMissingID = errors.New("beer id is required")
)

// StatusError reports a non-2xx response from the inventory API.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: http response status %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

func newStatusError(method, path string, status int, body []byte) *StatusError {
	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       readBodySnippet(body),
	}
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
