package beerclient

import (
	"net/url"
	"strconv"
)

const (
	defaultPageNumber = 0
	defaultPageSize   = 25
	maxPageSize       = 1000
)

// ListParams carries the optional list filters. A nil field is omitted from the request.
// PageNumber is one-based on input; the service expects a zero-based index.
type ListParams struct {
	BeerName      *string
	BeerStyle     *BeerStyle
	ShowInventory *bool
	PageNumber    *int
	PageSize      *int
}

// ListQuery builds the full paginated query for params.
func ListQuery(params ListParams) url.Values {
	q := url.Values{}
	addPageRequest(q, params.PageNumber, params.PageSize)
	addBeerName(q, params.BeerName)
	addBeerStyle(q, params.BeerStyle)
	addShowInventory(q, params.ShowInventory)
	return q
}

// addPageRequest always sets both pagination keys. pageSize has no lower
// bound; zero and negative sizes go to the service unchanged.
func addPageRequest(q url.Values, pageNumber, pageSize *int) {
	number := defaultPageNumber
	if pageNumber != nil && *pageNumber > 0 {
		number = *pageNumber - 1
	}
	q.Set("pageNumber", strconv.Itoa(number))

	size := defaultPageSize
	if pageSize != nil {
		size = min(*pageSize, maxPageSize)
	}
	q.Set("pageSize", strconv.Itoa(size))
}

func addBeerName(q url.Values, name *string) {
	if name != nil {
		q.Set("beerName", *name)
	}
}

func addBeerStyle(q url.Values, style *BeerStyle) {
	if style != nil {
		q.Set("beerStyle", string(*style))
	}
}

func addShowInventory(q url.Values, show *bool) {
	if show != nil && *show {
		q.Set("showInventory", "true")
	}
}
