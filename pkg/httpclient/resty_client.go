package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Options configures a RestyClient.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient bound to opts.BaseURL.
func NewRestyClient(opts Options) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(opts)}
}

// newRestyBaseClient creates a new resty.Client with JSON defaults.
func newRestyBaseClient(opts Options) *resty.Client {
	c := resty.New()
	c.SetBaseURL(opts.BaseURL)
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	c.SetHeader("Accept", "application/json")
	if len(opts.Headers) > 0 {
		c.SetHeaders(opts.Headers)
	}
	return c
}

// Get performs an HTTP GET request with the given query parameters.
func (r *RestyClient) Get(ctx context.Context, path string, query url.Values) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	return r.do(req, http.MethodGet, path)
}

// Post performs an HTTP POST request with a JSON body.
func (r *RestyClient) Post(ctx context.Context, path string, body any) (Response, error) {
	return r.do(r.jsonRequest(ctx, body), http.MethodPost, path)
}

// Put performs an HTTP PUT request with a JSON body.
func (r *RestyClient) Put(ctx context.Context, path string, body any) (Response, error) {
	return r.do(r.jsonRequest(ctx, body), http.MethodPut, path)
}

// Delete performs an HTTP DELETE request.
func (r *RestyClient) Delete(ctx context.Context, path string) (Response, error) {
	return r.do(r.client.R().SetContext(ctx), http.MethodDelete, path)
}

func (r *RestyClient) jsonRequest(ctx context.Context, body any) *resty.Request {
	return r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func (r *RestyClient) do(req *resty.Request, method, path string) (Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte             { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int          { return r.resp.StatusCode() }
func (r *restyResponseAdapter) Header(key string) string { return r.resp.Header().Get(key) }
