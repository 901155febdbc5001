package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// RowsAll is the rows-per-page sentinel meaning every row on a single page.
const RowsAll = -1

// DefaultRowsPerPage is the page size of a freshly mounted view.
const DefaultRowsPerPage = 10

// FillerRowHeight is the rendered height in pixels of one padding row.
const FillerRowHeight = 53

// RowsPerPageOption is one entry of the page-size control.
type RowsPerPageOption struct {
	Value int
	Label string
}

// RowsPerPageOptions lists the page-size control entries in display order.
var RowsPerPageOptions = []RowsPerPageOption{
	{5, "5"},
	{10, "10"},
	{20, "20"},
	{RowsAll, "All"},
}

// ValidRowsPerPage reports whether n is one of RowsPerPageOptions.
func ValidRowsPerPage(n int) bool {
	for _, o := range RowsPerPageOptions {
		if o.Value == n {
			return true
		}
	}
	return false
}

// ParseRowsPerPage parses a page-size control value (base 10). "All" is accepted as RowsAll.
func ParseRowsPerPage(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return RowsAll, nil
	}
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: rows per page %q", ErrInvalidInput, s)
	}
	if !ValidRowsPerPage(int(n)) {
		return 0, fmt.Errorf("%w: rows per page %d not offered", ErrInvalidInput, n)
	}
	return int(n), nil
}

// PageWindow is the 0-based page of a client-side paginated list.
type PageWindow struct {
	Page        int
	RowsPerPage int
	Total       int
}

// ShowsAll reports whether the window uses the RowsAll sentinel.
func (w PageWindow) ShowsAll() bool {
	return w.RowsPerPage == RowsAll
}

// Bounds returns the [start, end) slice bounds, clamped to Total.
// With RowsAll the window covers the whole list regardless of Page.
func (w PageWindow) Bounds() (start, end int) {
	if w.ShowsAll() {
		return 0, w.Total
	}
	if w.RowsPerPage <= 0 || w.Page < 0 {
		return 0, 0
	}
	if w.Page >= w.Total {
		return w.Total, w.Total
	}
	start = min(w.Page*w.RowsPerPage, w.Total)
	end = min(start+w.RowsPerPage, w.Total)
	return start, end
}

// Shown is the number of real rows on the page.
func (w PageWindow) Shown() int {
	start, end := w.Bounds()
	return end - start
}

// EmptyRows is the number of padding rows that keep the page height constant.
// It is zero for RowsAll.
func (w PageWindow) EmptyRows() int {
	if w.ShowsAll() || w.RowsPerPage <= 0 {
		return 0
	}
	return w.RowsPerPage - w.Shown()
}

// TotalPages is ceiling(Total / RowsPerPage); RowsAll always yields one page.
func (w PageWindow) TotalPages() int {
	if w.ShowsAll() {
		return 1
	}
	if w.RowsPerPage <= 0 {
		return 0
	}
	return (w.Total + w.RowsPerPage - 1) / w.RowsPerPage
}

// HasPrev reports whether a previous page exists.
func (w PageWindow) HasPrev() bool {
	return !w.ShowsAll() && w.Page > 0
}

// HasNext reports whether a following page holds rows.
func (w PageWindow) HasNext() bool {
	if w.ShowsAll() || w.RowsPerPage <= 0 {
		return false
	}
	return w.Page < w.TotalPages()-1
}
