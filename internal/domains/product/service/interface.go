package service

import (
	"animalshop-backend/internal/domains/product/model"
	"animalshop-backend/internal/shared/response"

	"github.com/google/uuid"
)

type Service interface {
	List(query model.ListProductsQuery) ([]*model.Product, *response.Meta, error)
	GetByIdentifier(identifier string) (*model.Product, error)
	Create(req model.CreateProductRequest) (*model.Product, error)
	Update(id uuid.UUID, req model.UpdateProductRequest) (*model.Product, error)
	Delete(id uuid.UUID) error
}
