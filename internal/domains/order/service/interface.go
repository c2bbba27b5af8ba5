package service

import (
	cartmodel "animalshop-backend/internal/domains/cart/model"
	"animalshop-backend/internal/domains/order/model"
	"animalshop-backend/internal/shared/response"

	"github.com/google/uuid"
)

type Service interface {
	// Checkout converts the user's cart into a pending order: validate
	// address, debit stock all-or-nothing, snapshot line items, delete
	// the cart. Failure leaves cart, stock and order store untouched.
	Checkout(userID uuid.UUID, req cartmodel.CheckoutRequest) (*model.Order, error)

	Get(id, userID uuid.UUID) (*model.Order, error)
	ListByUser(userID uuid.UUID, query model.ListOrdersQuery) ([]*model.Order, *response.Meta, error)
	ListAll(query model.ListOrdersQuery) ([]*model.Order, *response.Meta, error)

	// UpdateStatus is the admin path through the state machine. A move
	// to cancelled restocks every line item, whatever the prior status.
	UpdateStatus(id uuid.UUID, req model.UpdateStatusRequest) (*model.Order, error)

	// Cancel is the owner's self-service path: pending orders only.
	Cancel(id, userID uuid.UUID) (*model.Order, error)
}
