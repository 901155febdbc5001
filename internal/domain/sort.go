package domain

import (
	"slices"
	"strings"
)

// SortMode is the value of the ordering control.
type SortMode string

// Ordering control values. Any other value (including SortDefault) leaves the order untouched.
const (
	SortDefault      SortMode = ""
	SortNameAsc      SortMode = "A-Z"
	SortNameDesc     SortMode = "Z-A"
	SortDiscountDesc SortMode = "discount-mayor"
	SortDiscountAsc  SortMode = "discount-minor"
)

// SortOption is one entry of the ordering control.
type SortOption struct {
	Mode  SortMode
	Label string
}

// SortOptions lists the ordering control entries in display order.
var SortOptions = []SortOption{
	{SortNameAsc, "Alphabet - A-Z"},
	{SortNameDesc, "Alphabet - Z-A"},
	{SortDiscountAsc, "Discount - Lowest to Highest"},
	{SortDiscountDesc, "Discount - Highest to Lowest"},
}

// ParseSortMode maps a raw control value to a SortMode. Unknown values map to SortDefault.
func ParseSortMode(s string) SortMode {
	m := SortMode(strings.TrimSpace(s))
	if m.Known() {
		return m
	}
	return SortDefault
}

// Known reports whether m is one of the four ordering modes.
func (m SortMode) Known() bool {
	switch m {
	case SortNameAsc, SortNameDesc, SortDiscountDesc, SortDiscountAsc:
		return true
	}
	return false
}

// offerField compares one field of two offers and returns 1, -1 or 0.
type offerField func(a, b Offer) int

func byName(a, b Offer) int {
	switch {
	case a.Name > b.Name:
		return 1
	case b.Name > a.Name:
		return -1
	}
	return 0
}

// byDiscount treats an absent discount as zero.
func byDiscount(a, b Offer) int {
	return a.DiscountOrZero().Cmp(b.DiscountOrZero())
}

func sortAsc(offers []Offer, field offerField) []Offer {
	slices.SortStableFunc(offers, field)
	return offers
}

func sortDesc(offers []Offer, field offerField) []Offer {
	slices.SortStableFunc(offers, func(a, b Offer) int { return field(b, a) })
	return offers
}

// SortOffers returns a stably ordered copy of offers for the given mode.
// The input slice is never modified.
func SortOffers(offers []Offer, mode SortMode) []Offer {
	sorted := slices.Clone(offers)
	if sorted == nil {
		sorted = []Offer{}
	}
	switch mode {
	case SortNameAsc:
		return sortAsc(sorted, byName)
	case SortNameDesc:
		return sortDesc(sorted, byName)
	case SortDiscountDesc:
		return sortDesc(sorted, byDiscount)
	case SortDiscountAsc:
		return sortAsc(sorted, byDiscount)
	default:
		return sorted
	}
}
