package beerclient

// Page is the paginated envelope returned by the list endpoint. Field names
// follow the Spring Data page shape the service emits; newer services nest the
// counters under "page" instead, which PageMeta captures.
type Page[T any] struct {
	Content          []T       `json:"content" yaml:"content"`
	Number           int       `json:"number" yaml:"number"`
	Size             int       `json:"size" yaml:"size"`
	TotalElements    int64     `json:"totalElements" yaml:"totalElements"`
	TotalPages       int       `json:"totalPages" yaml:"totalPages"`
	NumberOfElements int       `json:"numberOfElements" yaml:"numberOfElements"`
	First            bool      `json:"first" yaml:"first"`
	Last             bool      `json:"last" yaml:"last"`
	Empty            bool      `json:"empty" yaml:"empty"`
	Pageable         *Pageable `json:"pageable,omitempty" yaml:"pageable,omitempty"`
	PageMeta         *PageMeta `json:"page,omitempty" yaml:"page,omitempty"`
}

// Pageable mirrors the request echo some services embed in the page body.
type Pageable struct {
	PageNumber int   `json:"pageNumber" yaml:"pageNumber"`
	PageSize   int   `json:"pageSize" yaml:"pageSize"`
	Offset     int64 `json:"offset" yaml:"offset"`
	Paged      bool  `json:"paged" yaml:"paged"`
}

// PageMeta is the nested metadata block used by PagedModel responses.
type PageMeta struct {
	Size          int   `json:"size" yaml:"size"`
	Number        int   `json:"number" yaml:"number"`
	TotalElements int64 `json:"totalElements" yaml:"totalElements"`
	TotalPages    int   `json:"totalPages" yaml:"totalPages"`
}

// PageNumber returns the zero-based page index, whichever block carried it.
func (p *Page[T]) PageNumber() int {
	switch {
	case p.PageMeta != nil:
		return p.PageMeta.Number
	case p.Pageable != nil && p.Number == 0:
		return p.Pageable.PageNumber
	}
	return p.Number
}

// PageSize returns the requested page size.
func (p *Page[T]) PageSize() int {
	switch {
	case p.PageMeta != nil:
		return p.PageMeta.Size
	case p.Pageable != nil && p.Size == 0:
		return p.Pageable.PageSize
	}
	return p.Size
}

// Total returns the total number of elements across all pages.
func (p *Page[T]) Total() int64 {
	if p.PageMeta != nil {
		return p.PageMeta.TotalElements
	}
	return p.TotalElements
}
