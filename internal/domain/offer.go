package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Offer is a promotional offer as published by the upstream list endpoint.
// Names are not unique; duplicates are kept as separate rows.
// swagger:model Offer
type Offer struct {
	Name     string              `json:"name"`
	Discount decimal.NullDecimal `json:"discount" swaggertype:"number"`
}

// NewOffer returns an Offer with the given name and discount.
func NewOffer(name string, discount decimal.Decimal) Offer {
	return Offer{Name: name, Discount: decimal.NewNullDecimal(discount)}
}

// NewOfferWithoutDiscount returns an Offer whose discount is absent.
func NewOfferWithoutDiscount(name string) Offer {
	return Offer{Name: name}
}

// DiscountOrZero returns the discount, or zero when it is absent.
func (o Offer) DiscountOrZero() decimal.Decimal {
	if !o.Discount.Valid {
		return decimal.Zero
	}
	return o.Discount.Decimal
}

// DisplayDiscount is the text shown in the discount column. Absent and zero
// discounts both render as "0".
func (o Offer) DisplayDiscount() string {
	return o.DiscountOrZero().String()
}

// OfferListResponse is the body returned by the upstream list endpoint.
type OfferListResponse struct {
	Data []Offer `json:"data"`
}

// OfferFetcher fetches the full offer list from the upstream endpoint (or a test double).
type OfferFetcher interface {
	Fetch(ctx context.Context) ([]Offer, error)
}
