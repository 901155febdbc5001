package helpers

import (
	"net/http"
	"strconv"

	"offerdirectory/internal/domain"
)

// Pagination query parameter defaults and limits for server-side lists.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads page and page_size from the request query string,
// clamps them to valid ranges, and returns domain.PaginationParams.
// Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	page := DefaultPage
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			page = v
		}
	}
	pageSize := DefaultPageSize
	if s := r.URL.Query().Get("page_size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			pageSize = min(v, MaxPageSize)
		}
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta from the current page, page size, and total count.
// TotalPages is computed as ceiling(total / pageSize); if pageSize is 0, TotalPages is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ViewControls are the directory controls carried in a page query string.
// A nil field means the control was not submitted.
type ViewControls struct {
	Order       *domain.SortMode
	Page        *int
	RowsPerPage *string
}

// ParseViewControls reads order, page and rows_per_page from the query string.
// A page that is not an integer is reported as domain.ErrInvalidInput; range
// checks are left to the view state transitions.
func ParseViewControls(r *http.Request) (ViewControls, error) {
	q := r.URL.Query()
	var c ViewControls
	if q.Has("order") {
		mode := domain.ParseSortMode(q.Get("order"))
		c.Order = &mode
	}
	if q.Has("page") {
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			return ViewControls{}, domain.ErrInvalidInput
		}
		c.Page = &page
	}
	if q.Has("rows_per_page") {
		v := q.Get("rows_per_page")
		c.RowsPerPage = &v
	}
	return c, nil
}

// Empty reports whether no control was submitted.
func (c ViewControls) Empty() bool {
	return c.Order == nil && c.Page == nil && c.RowsPerPage == nil
}
