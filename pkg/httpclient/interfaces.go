package httpclient

import (
	"context"
	"net/url"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	Header(key string) string
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// Paths are resolved against the base URL the implementation was built with.
type Client interface {
	Get(ctx context.Context, path string, query url.Values) (Response, error)
	Post(ctx context.Context, path string, body any) (Response, error)
	Put(ctx context.Context, path string, body any) (Response, error)
	Delete(ctx context.Context, path string) (Response, error)
}
