package models

// Sort describes how a page was ordered.
type Sort struct {
	Empty    bool `json:"empty" yaml:"empty"`
	Sorted   bool `json:"sorted" yaml:"sorted"`
	Unsorted bool `json:"unsorted" yaml:"unsorted"`
}

// Pageable echoes the page request the server answered.
type Pageable struct {
	Offset     int64 `json:"offset" yaml:"offset"`
	Sort       *Sort `json:"sort,omitempty" yaml:"sort,omitempty"`
	Paged      bool  `json:"paged" yaml:"paged"`
	PageSize   int   `json:"pageSize" yaml:"pageSize"`
	PageNumber int   `json:"pageNumber" yaml:"pageNumber"`
	Unpaged    bool  `json:"unpaged" yaml:"unpaged"`
}

// Page is the paginated collection envelope list endpoints answer with.
//
// len(Content) <= Size, and TotalPages == ceil(TotalElements/Size) when
// Size > 0.
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
	Sort             *Sort     `json:"sort,omitempty" yaml:"sort,omitempty"`
	Pageable         *Pageable `json:"pageable,omitempty" yaml:"pageable,omitempty"`
}

// PageOf wraps a bare sequence as a single page holding all of items.
func PageOf[T any](items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	p := Page[T]{
		Content:          items,
		Size:             n,
		TotalElements:    int64(n),
		NumberOfElements: n,
		First:            true,
		Last:             true,
		Empty:            n == 0,
	}
	if n > 0 {
		p.TotalPages = 1
	}
	return p
}

// Len returns the number of records on the page.
func (p Page[T]) Len() int {
	return len(p.Content)
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	if p.Last {
		return false
	}
	return p.Number+1 < p.TotalPages
}
