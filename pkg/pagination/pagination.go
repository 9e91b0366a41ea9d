// Package pagination slices ordered result sets into fixed-size pages.
//
// Page numbers are 1-based and come from untrusted request input: anything
// absent, malformed or out of range is clamped to the nearest valid page
// instead of failing the request.
package pagination

import "strconv"

// Page describes one page of an ordered result set.
type Page struct {
	Number      int   `json:"page"`
	Size        int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// New builds page metadata for a result set of totalCount items. The
// requested page is clamped into [1, TotalPages]. An empty result set still
// yields a valid page 1 with no neighbours.
func New(totalCount int64, requested, size int) Page {
	if size < 1 {
		size = 1
	}

	totalPages := int((totalCount + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:      number,
		Size:        size,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}
}

// Offset returns the index of the page's first item in the full result set.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of items on the page.
func (p Page) Limit() int {
	return p.Size
}

// ParsePageParam converts a raw query parameter into a page number.
// Absent or malformed values default to page 1.
func ParsePageParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
