package service

import (
	"animalshop-backend/internal/domains/cart/model"

	"github.com/google/uuid"
)

type Service interface {
	// Get returns the owner's enriched cart, or the empty view if none
	// is stored. Never creates a record.
	Get(owner model.Owner) (*model.CartResponse, error)

	// AddItem appends or increments a line item after an additive stock
	// check (existing + requested against current stock).
	AddItem(owner model.Owner, req model.AddItemRequest) (*model.CartResponse, error)

	// UpdateItem replaces a line item's quantity after an absolute
	// stock check.
	UpdateItem(owner model.Owner, productID uuid.UUID, req model.UpdateItemRequest) (*model.CartResponse, error)

	RemoveItem(owner model.Owner, productID uuid.UUID) (*model.CartResponse, error)

	// Clear deletes the stored cart; succeeds even when none exists.
	Clear(owner model.Owner) error

	// SetShippingAddress attaches an owned address to the cart,
	// creating the cart lazily. Guests cannot set shipping addresses.
	SetShippingAddress(owner model.Owner, addressID uuid.UUID) (*model.CartResponse, error)

	// MergeCarts reconciles the guest cart into the user's at login,
	// then runs the stock revalidation pass on the result.
	MergeCarts(userID uuid.UUID, guestID string) (*model.CartResponse, error)

	// MergeGuestCart adapts MergeCarts for the login flow, which only
	// cares whether the merge failed.
	MergeGuestCart(userID uuid.UUID, guestID string) error
}
