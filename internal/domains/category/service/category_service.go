package service

import (
	"time"

	"animalshop-backend/internal/domains/category/model"
	"animalshop-backend/internal/domains/category/repository"
	"animalshop-backend/internal/shared/apperror"
	"animalshop-backend/internal/shared/response"
	"animalshop-backend/internal/shared/utils"

	"github.com/google/uuid"
)

type Service interface {
	List(query model.ListCategoriesQuery) ([]*model.Category, *response.Meta, error)
	GetByIdentifier(identifier string) (*model.Category, error)
	Create(req model.CreateCategoryRequest) (*model.Category, error)
	Update(id uuid.UUID, req model.UpdateCategoryRequest) (*model.Category, error)
	Delete(id uuid.UUID) error
}

type categoryService struct {
	repo repository.Repository
}

func NewCategoryService(repo repository.Repository) Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(query model.ListCategoriesQuery) ([]*model.Category, *response.Meta, error) {
	paged, meta := utils.Paginate(s.repo.List(), query.Page, query.Limit)
	return paged, meta, nil
}

func (s *categoryService) GetByIdentifier(identifier string) (*model.Category, error) {
	if id, err := uuid.Parse(identifier); err == nil {
		if cat, ok := s.repo.GetByID(id); ok {
			return cat, nil
		}
		return nil, apperror.NotFound("Category")
	}
	if cat, ok := s.repo.GetBySlug(identifier); ok {
		return cat, nil
	}
	return nil, apperror.NotFound("Category")
}

func (s *categoryService) Create(req model.CreateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	now := time.Now()
	category := &model.Category{
		ID:          uuid.New(),
		Slug:        utils.GenerateUniqueSlug(req.Name, s.repo.Slugs()),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(id uuid.UUID, req model.UpdateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	category, ok := s.repo.GetByID(id)
	if !ok {
		return nil, apperror.NotFound("Category")
	}

	if req.Name != nil && *req.Name != category.Name {
		category.Name = *req.Name
		category.Slug = utils.GenerateUniqueSlug(*req.Name, s.repo.Slugs())
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	category.UpdatedAt = time.Now()

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(id uuid.UUID) error {
	if !s.repo.Delete(id) {
		return apperror.NotFound("Category")
	}
	return nil
}
