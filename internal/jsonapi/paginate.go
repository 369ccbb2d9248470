package jsonapi

import (
	"fmt"
	"net/url"
	"strconv"
)

// Query parameter names used for pagination.
const (
	PageSizeParam   = "page[size]"
	PageNumberParam = "page[number]"
)

// Page describes the page a client asked for.
type Page struct {
	Size   int
	Number int
}

// PageDefaults are the values applied when a client omits pagination
// parameters, plus the largest page size a client may request.
// A MaxSize of zero means unbounded.
type PageDefaults struct {
	Size    int
	Number  int
	MaxSize int
}

// Pagination is one page of rows together with the totals needed to build
// pagination links and meta.
type Pagination[T any] struct {
	Rows         []T
	Page         Page
	TotalResults int
	TotalPages   int
}

// ParsePage reads page[size] and page[number] from values. Missing or empty
// values fall back to defaults. The returned details describe every invalid
// value; the page is only meaningful when details is empty.
func ParsePage(values url.Values, defaults PageDefaults) (Page, []string) {
	page := Page{Size: defaults.Size, Number: defaults.Number}
	var details []string

	if raw := values.Get(PageSizeParam); raw != "" {
		size, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			details = append(details, fmt.Sprintf("%s must be an integer", PageSizeParam))
		case size < 1:
			details = append(details, fmt.Sprintf("%s must be greater than or equal to 1", PageSizeParam))
		case defaults.MaxSize > 0 && size > defaults.MaxSize:
			details = append(details,
				fmt.Sprintf("%s must be less than or equal to %d", PageSizeParam, defaults.MaxSize))
		default:
			page.Size = size
		}
	}

	if raw := values.Get(PageNumberParam); raw != "" {
		number, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			details = append(details, fmt.Sprintf("%s must be an integer", PageNumberParam))
		case number < 1:
			details = append(details, fmt.Sprintf("%s must be greater than or equal to 1", PageNumberParam))
		default:
			page.Number = number
		}
	}

	return page, details
}

// Paginate slices rows to the requested page. TotalResults is the length of
// rows before slicing. A page past the end yields an empty, non-nil slice.
func Paginate[T any](rows []T, page Page) Pagination[T] {
	if page.Size < 1 {
		page.Size = 1
	}
	if page.Number < 1 {
		page.Number = 1
	}

	total := len(rows)
	totalPages := total / page.Size
	if total%page.Size != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	start := total
	if page.Number-1 <= total/page.Size {
		start = min((page.Number-1)*page.Size, total)
	}
	end := total
	if total-start > page.Size {
		end = start + page.Size
	}

	out := make([]T, end-start)
	copy(out, rows[start:end])

	return Pagination[T]{
		Rows:         out,
		Page:         page,
		TotalResults: total,
		TotalPages:   totalPages,
	}
}

// Meta returns the meta object describing p.
func (p Pagination[T]) Meta() *Meta {
	return &Meta{
		TotalResults:      p.TotalResults,
		TotalPages:        p.TotalPages,
		CurrentPageNumber: p.Page.Number,
		CurrentPageSize:   p.Page.Size,
	}
}

// HasPrev reports whether a page precedes the current one.
func (p Pagination[T]) HasPrev() bool {
	return p.Page.Number > 1
}

// HasNext reports whether a page follows the current one.
func (p Pagination[T]) HasNext() bool {
	return p.Page.Number < p.TotalPages
}
