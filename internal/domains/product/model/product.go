package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is mutated by checkout (debit) and
// order cancellation (credit) through the repository's ledger operations.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image,omitempty"`
	Banner      string          `json:"banner,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsFeatured  bool            `json:"isFeatured"`
	Rating      float64         `json:"rating"`
	NumReviews  int             `json:"numReviews"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// StockMutation is one product/quantity pair for a ledger debit or credit.
type StockMutation struct {
	ProductID uuid.UUID
	Quantity  int
}

// StockSnapshot captures name and price at the moment stock was debited,
// so order line items are decoupled from later catalog edits.
type StockSnapshot struct {
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
}
