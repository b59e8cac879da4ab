package domain

import (
	"encoding/json"
	"math"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100

	// MaxPage keeps (page-1)*pageSize inside int for any valid page size.
	MaxPage = math.MaxInt / MaxPageSize
)

// PageRequest selects one page of a listing.
type PageRequest struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	SearchTerm string `json:"search"`
}

// Validate clamps the request in place. It never fails and is idempotent.
func (p *PageRequest) Validate() {
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
}

// Normalized returns a clamped copy.
func (p PageRequest) Normalized() PageRequest {
	p.Validate()
	return p
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.PageSize
}

// Search returns the trimmed search term; empty means no filter.
func (p PageRequest) Search() string {
	return strings.TrimSpace(p.SearchTerm)
}

// PageResult is one page of items plus the totals of the whole listing.
// Derived values are computed, never stored.
type PageResult[T any] struct {
	Items       []T
	TotalItems  int
	CurrentPage int
	PageSize    int
}

// NewPageResult builds a page from the fetched items and the total count.
func NewPageResult[T any](items []T, totalItems int, req PageRequest) PageResult[T] {
	req.Validate()
	if items == nil {
		items = []T{}
	}
	return PageResult[T]{
		Items:       items,
		TotalItems:  totalItems,
		CurrentPage: req.Page,
		PageSize:    req.PageSize,
	}
}

// TotalPages is ceil(TotalItems / PageSize); 0 for an empty listing.
func (r PageResult[T]) TotalPages() int {
	if r.PageSize < 1 || r.TotalItems < 1 {
		return 0
	}
	pages := r.TotalItems / r.PageSize
	if r.TotalItems%r.PageSize != 0 {
		pages++
	}
	return pages
}

func (r PageResult[T]) HasPrevious() bool {
	return r.CurrentPage > 1
}

func (r PageResult[T]) HasNext() bool {
	return r.CurrentPage < r.TotalPages()
}

// MarshalJSON includes the derived fields.
func (r PageResult[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Items       []T  `json:"items"`
		TotalItems  int  `json:"totalItems"`
		TotalPages  int  `json:"totalPages"`
		CurrentPage int  `json:"currentPage"`
		PageSize    int  `json:"pageSize"`
		HasPrevious bool `json:"hasPrevious"`
		HasNext     bool `json:"hasNext"`
	}{
		Items:       r.Items,
		TotalItems:  r.TotalItems,
		TotalPages:  r.TotalPages(),
		CurrentPage: r.CurrentPage,
		PageSize:    r.PageSize,
		HasPrevious: r.HasPrevious(),
		HasNext:     r.HasNext(),
	})
}
