package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one product entry in a stored cart.
type LineItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// Cart is the stored record: at most one per owner. A cart with zero
// items is valid and stays in the store until explicitly cleared.
type Cart struct {
	ID                uuid.UUID
	Owner             Owner
	ShippingAddressID *uuid.UUID
	Items             []LineItem
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// FindItem returns the index of the line item for productID, or -1.
func (c *Cart) FindItem(productID uuid.UUID) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// EnrichedItem is a line item joined with the live product snapshot.
type EnrichedItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Image     string          `json:"image,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
	AddedAt   time.Time       `json:"addedAt"`
}

// ShippingAddressView is the denormalized address snapshot embedded in
// cart responses when a shipping address is set and still resolvable.
type ShippingAddressView struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Address1   string    `json:"address1"`
	Address2   string    `json:"address2,omitempty"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
}

// CartResponse is the display-ready projection of a cart. An owner with
// no stored cart gets the zero-value view: empty id, no items, zero
// totals. That view is never persisted.
type CartResponse struct {
	ID                string               `json:"id"`
	Items             []EnrichedItem       `json:"items"`
	ItemCount         int                  `json:"itemCount"`
	Total             decimal.Decimal      `json:"total"`
	ShippingAddressID *uuid.UUID           `json:"shippingAddressId,omitempty"`
	ShippingAddress   *ShippingAddressView `json:"shippingAddress,omitempty"`
	CreatedAt         *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time           `json:"updatedAt,omitempty"`
}

// EmptyCartResponse is what an owner without a stored cart sees.
func EmptyCartResponse() *CartResponse {
	return &CartResponse{
		ID:    "",
		Items: []EnrichedItem{},
		Total: decimal.Zero,
	}
}
