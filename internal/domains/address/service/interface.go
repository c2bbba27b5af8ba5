package service

import (
	"animalshop-backend/internal/domains/address/model"

	"github.com/google/uuid"
)

type Service interface {
	List(userID uuid.UUID) ([]*model.Address, error)
	Get(id, userID uuid.UUID) (*model.Address, error)
	Create(userID uuid.UUID, req model.CreateAddressRequest) (*model.Address, error)
	Update(id, userID uuid.UUID, req model.UpdateAddressRequest) (*model.Address, error)
	Delete(id, userID uuid.UUID) error
	SetDefault(id, userID uuid.UUID) (*model.Address, error)
}
