package repository

import (
	"animalshop-backend/internal/domains/order/model"

	"github.com/google/uuid"
)

type Repository interface {
	Create(order *model.Order)
	GetByID(id uuid.UUID) (*model.Order, bool)
	ListByUser(userID uuid.UUID) []*model.Order
	ListAll() []*model.Order

	// NextOrderNumber hands out the process-wide monotonic sequence.
	NextOrderNumber() int64

	// Transition applies fn to the stored order under the repository
	// lock, so guard checks and the mutation they protect are one
	// atomic step. fn returning an error leaves the order unchanged.
	Transition(id uuid.UUID, fn func(order *model.Order) error) (*model.Order, error)
}
