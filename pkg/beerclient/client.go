// Package beerclient is a typed client for the beer inventory REST API.
package beerclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/samvad-hq/beer-inventory-client/pkg/httpclient"
)

const (
	// BeerPath is the collection endpoint.
	BeerPath = "/api/v1/beer"
	// BeerByIDPath is the single-record endpoint template.
	BeerByIDPath = BeerPath + "/{beerId}"
)

// Client translates typed calls into requests against the inventory API.
// It holds no mutable state and is safe for concurrent use when the transport is.
type Client struct {
	transport httpclient.Client
	log       Logger
}

// New wraps a pre-built transport. The transport owns base URL and timeouts.
func New(transport httpclient.Client, log Logger) (*Client, error) {
	if transport == nil {
		return nil, fmt.Errorf("http client must not be nil")
	}
	return &Client{transport: transport, log: ensureLogger(log)}, nil
}

func beerByIDPath(id uuid.UUID) string {
	return strings.Replace(BeerByIDPath, "{beerId}", url.PathEscape(id.String()), 1)
}

// GetBeerByID fetches a single beer.
func (c *Client) GetBeerByID(ctx context.Context, id uuid.UUID) (*Beer, error) {
	return c.getBeer(ctx, beerByIDPath(id), nil)
}

// CreateBeer posts a new beer and returns the representation found at the
// Location the service answered with.
func (c *Client) CreateBeer(ctx context.Context, beer Beer) (*Beer, error) {
	resp, err := c.transport.Post(ctx, BeerPath, beer)
	if err != nil {
		return nil, fmt.Errorf("post beer: %w", err)
	}
	if err := c.checkStatus(http.MethodPost, BeerPath, resp); err != nil {
		return nil, err
	}

	location := strings.TrimSpace(resp.Header("Location"))
	if location == "" {
		return nil, ErrMissingLocation
	}
	loc, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse location %q: %w", location, err)
	}
	c.log.DebugObj("beer created", "location", location)

	var query url.Values
	if loc.RawQuery != "" {
		query = loc.Query()
	}
	// Only the path is followed; the configured base URL stays authoritative.
	return c.getBeer(ctx, loc.Path, query)
}

// UpdateBeer replaces the stored beer and returns the state read back afterwards.
// The PUT response body is ignored.
func (c *Client) UpdateBeer(ctx context.Context, beer Beer) (*Beer, error) {
	if beer.ID == uuid.Nil {
		return nil, ErrMissingID
	}
	path := beerByIDPath(beer.ID)
	resp, err := c.transport.Put(ctx, path, beer)
	if err != nil {
		return nil, fmt.Errorf("put beer: %w", err)
	}
	if err := c.checkStatus(http.MethodPut, path, resp); err != nil {
		return nil, err
	}
	return c.GetBeerByID(ctx, beer.ID)
}

// DeleteBeer removes a beer.
func (c *Client) DeleteBeer(ctx context.Context, id uuid.UUID) error {
	path := beerByIDPath(id)
	resp, err := c.transport.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("delete beer: %w", err)
	}
	return c.checkStatus(http.MethodDelete, path, resp)
}

// ListBeers returns one page of beers matching params.
func (c *Client) ListBeers(ctx context.Context, params ListParams) (*Page[Beer], error) {
	return c.listBeers(ctx, ListQuery(params))
}

// ListAllBeers returns the first page with default paging and no filters.
func (c *Client) ListAllBeers(ctx context.Context) (*Page[Beer], error) {
	return c.ListBeers(ctx, ListParams{})
}

// ListBeersByNameAndStyle filters by name and style without sending paging parameters.
func (c *Client) ListBeersByNameAndStyle(ctx context.Context, name *string, style *BeerStyle) (*Page[Beer], error) {
	q := url.Values{}
	addBeerName(q, name)
	addBeerStyle(q, style)
	return c.listBeers(ctx, q)
}

// ListBeersWithInventory is ListBeersByNameAndStyle plus the inventory flag.
func (c *Client) ListBeersWithInventory(ctx context.Context, name *string, style *BeerStyle, showInventory *bool) (*Page[Beer], error) {
	q := url.Values{}
	addBeerName(q, name)
	addBeerStyle(q, style)
	addShowInventory(q, showInventory)
	return c.listBeers(ctx, q)
}

func (c *Client) listBeers(ctx context.Context, query url.Values) (*Page[Beer], error) {
	resp, err := c.transport.Get(ctx, BeerPath, query)
	if err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}
	if err := c.checkStatus(http.MethodGet, BeerPath, resp); err != nil {
		return nil, err
	}

	var page Page[Beer]
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("decode beer page: %w", err)
	}
	return &page, nil
}

func (c *Client) getBeer(ctx context.Context, path string, query url.Values) (*Beer, error) {
	resp, err := c.transport.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("get beer: %w", err)
	}
	if err := c.checkStatus(http.MethodGet, path, resp); err != nil {
		return nil, err
	}

	var beer Beer
	if err := json.Unmarshal(resp.Body(), &beer); err != nil {
		return nil, fmt.Errorf("decode beer: %w", err)
	}
	return &beer, nil
}

func (c *Client) checkStatus(method, path string, resp httpclient.Response) error {
	status := resp.StatusCode()
	c.log.DebugObj("beer api response", "request", map[string]any{
		"method": method,
		"path":   path,
		"status": status,
	})
	if status < 200 || status > 299 {
		return newStatusError(method, path, status, resp.Body())
	}
	return nil
}
