package repository

import (
	"animalshop-backend/internal/domains/address/model"

	"github.com/google/uuid"
)

type Repository interface {
	ListByUser(userID uuid.UUID) []*model.Address

	// GetOwned returns the address only when it exists and belongs to
	// userID; absence and foreign ownership are indistinguishable.
	GetOwned(id, userID uuid.UUID) (*model.Address, bool)

	// Create stores the address. The user's first address becomes the
	// default; if asDefault is set, prior defaults are cleared in the
	// same critical section.
	Create(address *model.Address, asDefault bool) *model.Address

	// Update replaces the stored address. If asDefault is set, prior
	// defaults for the owner are cleared atomically.
	Update(address *model.Address, asDefault bool) *model.Address

	Delete(id, userID uuid.UUID) bool

	// SetDefault marks the address as the owner's single default.
	SetDefault(id, userID uuid.UUID) (*model.Address, bool)
}
