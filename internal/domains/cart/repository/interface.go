package repository

import (
	"animalshop-backend/internal/domains/cart/model"
)

// Repository stores at most one cart per owner key. Callers serialize
// access per owner; the store itself only guards its map.
type Repository interface {
	Get(owner model.Owner) (*model.Cart, bool)

	// Save inserts or replaces the cart under its owner's key.
	Save(cart *model.Cart)

	// Delete removes the owner's cart; returns false when none existed.
	Delete(owner model.Owner) bool
}
