package service

import (
	"time"

	categoryrepo "animalshop-backend/internal/domains/category/repository"
	"animalshop-backend/internal/domains/product/model"
	"animalshop-backend/internal/domains/product/repository"
	"animalshop-backend/internal/shared/apperror"
	"animalshop-backend/internal/shared/response"
	"animalshop-backend/internal/shared/utils"

	"github.com/google/uuid"
)

type productService struct {
	repo       repository.Repository
	categories categoryrepo.Repository
}

func NewProductService(repo repository.Repository, categories categoryrepo.Repository) Service {
	return &productService{repo: repo, categories: categories}
}

func (s *productService) List(query model.ListProductsQuery) ([]*model.Product, *response.Meta, error) {
	products := s.repo.List()

	filtered := make([]*model.Product, 0, len(products))
	for _, p := range products {
		if query.Category != "" && p.Category != query.Category {
			continue
		}
		if query.Featured != nil && p.IsFeatured != *query.Featured {
			continue
		}
		filtered = append(filtered, p)
	}

	paged, meta := utils.Paginate(filtered, query.Page, query.Limit)
	return paged, meta, nil
}

func (s *productService) GetByIdentifier(identifier string) (*model.Product, error) {
	if id, err := uuid.Parse(identifier); err == nil {
		if p, ok := s.repo.GetByID(id); ok {
			return p, nil
		}
		return nil, apperror.NotFound("Product")
	}
	if p, ok := s.repo.GetBySlug(identifier); ok {
		return p, nil
	}
	return nil, apperror.NotFound("Product")
}

func (s *productService) Create(req model.CreateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}
	if _, ok := s.categories.GetBySlug(req.Category); !ok {
		return nil, apperror.NotFound("Category")
	}

	now := time.Now()
	product := &model.Product{
		ID:          uuid.New(),
		Slug:        utils.GenerateUniqueSlug(req.Name, s.repo.Slugs()),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Banner:      req.Banner,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		IsFeatured:  req.IsFeatured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(id uuid.UUID, req model.UpdateProductRequest) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	product, ok := s.repo.GetByID(id)
	if !ok {
		return nil, apperror.NotFound("Product")
	}

	if req.Name != nil && *req.Name != product.Name {
		product.Name = *req.Name
		product.Slug = utils.GenerateUniqueSlug(*req.Name, s.repo.Slugs())
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Banner != nil {
		product.Banner = *req.Banner
	}
	if req.Category != nil {
		if _, ok := s.categories.GetBySlug(*req.Category); !ok {
			return nil, apperror.NotFound("Category")
		}
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	if !s.repo.Delete(id) {
		return apperror.NotFound("Product")
	}
	return nil
}
