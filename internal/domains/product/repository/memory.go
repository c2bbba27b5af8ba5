package repository

import (
	"fmt"
	"sort"
	"sync"

	"animalshop-backend/internal/domains/product/model"
	"animalshop-backend/internal/shared/apperror"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*model.Product
	bySlug   map[string]uuid.UUID
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		products: make(map[uuid.UUID]*model.Product),
		bySlug:   make(map[string]uuid.UUID),
	}
}

func (r *memoryRepository) List() []*model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Product, 0, len(r.products))
	for _, p := range r.products {
		clone := *p
		items = append(items, &clone)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func (r *memoryRepository) GetByID(id uuid.UUID) (*model.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, false
	}
	clone := *p
	return &clone, true
}

func (r *memoryRepository) GetBySlug(slug string) (*model.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, false
	}
	clone := *r.products[id]
	return &clone, true
}

func (r *memoryRepository) Slugs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slugs := make([]string, 0, len(r.bySlug))
	for s := range r.bySlug {
		slugs = append(slugs, s)
	}
	return slugs
}

func (r *memoryRepository) Create(p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bySlug[p.Slug]; exists {
		return apperror.BadRequest(fmt.Sprintf("Product with slug '%s' already exists", p.Slug))
	}
	clone := *p
	r.products[p.ID] = &clone
	r.bySlug[p.Slug] = p.ID
	return nil
}

func (r *memoryRepository) Update(p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.products[p.ID]
	if !ok {
		return apperror.NotFound("Product")
	}
	if p.Slug != current.Slug {
		if _, taken := r.bySlug[p.Slug]; taken {
			return apperror.BadRequest(fmt.Sprintf("Product with slug '%s' already exists", p.Slug))
		}
		delete(r.bySlug, current.Slug)
		r.bySlug[p.Slug] = p.ID
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *memoryRepository) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return false
	}
	delete(r.bySlug, p.Slug)
	delete(r.products, id)
	return true
}

func (r *memoryRepository) DebitStock(mutations []model.StockMutation) ([]model.StockSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate everything before touching any stock so a failure partway
	// through the list leaves the ledger untouched.
	for _, m := range mutations {
		p, ok := r.products[m.ProductID]
		if !ok {
			return nil, apperror.BadRequest(fmt.Sprintf("Product %s not found", m.ProductID))
		}
		if m.Quantity > p.Stock {
			return nil, apperror.BadRequestWithDetails(
				fmt.Sprintf("Insufficient stock for %s. Available: %d, Requested: %d", p.Name, p.Stock, m.Quantity),
				map[string]interface{}{
					"productId": p.ID,
					"available": p.Stock,
					"requested": m.Quantity,
				},
			)
		}
	}

	snapshots := make([]model.StockSnapshot, 0, len(mutations))
	for _, m := range mutations {
		p := r.products[m.ProductID]
		p.Stock -= m.Quantity
		snapshots = append(snapshots, model.StockSnapshot{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  m.Quantity,
		})
	}
	return snapshots, nil
}

func (r *memoryRepository) CreditStock(mutations []model.StockMutation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range mutations {
		if p, ok := r.products[m.ProductID]; ok {
			p.Stock += m.Quantity
		}
	}
}
