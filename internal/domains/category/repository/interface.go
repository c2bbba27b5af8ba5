package repository

import (
	"animalshop-backend/internal/domains/category/model"

	"github.com/google/uuid"
)

type Repository interface {
	List() []*model.Category
	GetByID(id uuid.UUID) (*model.Category, bool)
	GetBySlug(slug string) (*model.Category, bool)
	Slugs() []string
	Create(category *model.Category) error
	Update(category *model.Category) error
	Delete(id uuid.UUID) bool
}
