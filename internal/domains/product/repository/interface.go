package repository

import (
	"animalshop-backend/internal/domains/product/model"

	"github.com/google/uuid"
)

// Repository is the catalog store. It doubles as the stock ledger:
// DebitStock and CreditStock are the only paths that mutate stock from
// outside the admin CRUD surface.
type Repository interface {
	List() []*model.Product
	GetByID(id uuid.UUID) (*model.Product, bool)
	GetBySlug(slug string) (*model.Product, bool)
	Slugs() []string
	Create(p *model.Product) error
	Update(p *model.Product) error
	Delete(id uuid.UUID) bool

	// DebitStock validates every mutation against current stock, then
	// applies all debits under a single lock. Any failure applies nothing.
	// Snapshots carry name and price captured at debit time.
	DebitStock(mutations []model.StockMutation) ([]model.StockSnapshot, error)

	// CreditStock restores stock for cancelled orders. Products that no
	// longer exist are skipped.
	CreditStock(mutations []model.StockMutation)
}
