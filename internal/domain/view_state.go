package domain

import (
	"fmt"
	"slices"
)

// LoadStatus is the lifecycle stage of a view's offer list.
type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusLoaded  LoadStatus = "loaded"
	StatusFailed  LoadStatus = "failed"
)

// ViewState is the immutable state of one directory view. Every transition
// returns a new value; the receiver is never modified.
type ViewState struct {
	offers      []Offer
	status      LoadStatus
	order       SortMode
	page        int
	rowsPerPage int
	failure     string
}

// NewViewState returns the state of a freshly mounted view: loading, no offers,
// page 0 and DefaultRowsPerPage rows per page.
func NewViewState() ViewState {
	return ViewState{
		offers:      []Offer{},
		status:      StatusLoading,
		order:       SortDefault,
		page:        0,
		rowsPerPage: DefaultRowsPerPage,
	}
}

func (s ViewState) Status() LoadStatus { return s.status }
func (s ViewState) IsLoading() bool { return s.status == StatusLoading }
func (s ViewState) Order() SortMode { return s.order }
func (s ViewState) Page() int { return s.page }
func (s ViewState) RowsPerPage() int { return s.rowsPerPage }
func (s ViewState) Total() int { return len(s.offers) }

// Failure is the error message of a failed load, empty otherwise.
func (s ViewState) Failure() string { return s.failure }

// Offers returns a copy of the full list in its current order.
func (s ViewState) Offers() []Offer {
	return slices.Clone(s.offers)
}

// Window returns the pagination window over the current list.
func (s ViewState) Window() PageWindow {
	return PageWindow{Page: s.page, RowsPerPage: s.rowsPerPage, Total: len(s.offers)}
}

// VisibleOffers returns the rows of the current page.
func (s ViewState) VisibleOffers() []Offer {
	start, end := s.Window().Bounds()
	return slices.Clone(s.offers[start:end])
}

// EmptyRows is the number of padding rows for the current page.
func (s ViewState) EmptyRows() int {
	return s.Window().EmptyRows()
}

// Loaded replaces the offer list wholesale and leaves the loading stage.
// Page and page size are kept; an order selected while loading is applied
// to the new list.
func (s ViewState) Loaded(offers []Offer) ViewState {
	next := s
	next.offers = SortOffers(offers, s.order)
	next.status = StatusLoaded
	next.failure = ""
	return next
}

// Failed records a failed load. The offer list stays empty.
func (s ViewState) Failed(err error) ViewState {
	next := s
	next.status = StatusFailed
	next.failure = "unable to load offers"
	if err != nil {
		next.failure = err.Error()
	}
	return next
}

// SelectOrder reorders the current list by mode. Unknown modes copy the list
// unchanged. Page and page size are not touched.
func (s ViewState) SelectOrder(mode SortMode) ViewState {
	next := s
	next.offers = SortOffers(s.offers, mode)
	next.order = mode
	return next
}

// ChangePage moves to page. Pages past the end are allowed and render empty.
func (s ViewState) ChangePage(page int) (ViewState, error) {
	if page < 0 {
		return s, fmt.Errorf("%w: page %d is negative", ErrInvalidInput, page)
	}
	next := s
	next.page = page
	if next.rowsPerPage == RowsAll {
		next.page = 0
	}
	return next, nil
}

// ChangeRowsPerPage parses a page-size control value, applies it and resets to page 0.
func (s ViewState) ChangeRowsPerPage(value string) (ViewState, error) {
	n, err := ParseRowsPerPage(value)
	if err != nil {
		return s, err
	}
	next := s
	next.rowsPerPage = n
	next.page = 0
	return next, nil
}
