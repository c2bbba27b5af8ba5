package repository

import (
	"fmt"
	"sort"
	"sync"

	"animalshop-backend/internal/domains/category/model"
	"animalshop-backend/internal/shared/apperror"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]*model.Category
	bySlug     map[string]uuid.UUID
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		categories: make(map[uuid.UUID]*model.Category),
		bySlug:     make(map[string]uuid.UUID),
	}
}

func (r *memoryRepository) List() []*model.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Category, 0, len(r.categories))
	for _, cat := range r.categories {
		clone := *cat
		items = append(items, &clone)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func (r *memoryRepository) GetByID(id uuid.UUID) (*model.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cat, ok := r.categories[id]
	if !ok {
		return nil, false
	}
	clone := *cat
	return &clone, true
}

func (r *memoryRepository) GetBySlug(slug string) (*model.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, false
	}
	clone := *r.categories[id]
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

func (r *memoryRepository) Create(category *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bySlug[category.Slug]; exists {
		return apperror.BadRequest(fmt.Sprintf("Category with slug '%s' already exists", category.Slug))
	}
	clone := *category
	r.categories[category.ID] = &clone
	r.bySlug[category.Slug] = category.ID
	return nil
}

func (r *memoryRepository) Update(category *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.categories[category.ID]
	if !ok {
		return apperror.NotFound("Category")
	}
	if category.Slug != current.Slug {
		if _, taken := r.bySlug[category.Slug]; taken {
			return apperror.BadRequest(fmt.Sprintf("Category with slug '%s' already exists", category.Slug))
		}
		delete(r.bySlug, current.Slug)
		r.bySlug[category.Slug] = category.ID
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *memoryRepository) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, ok := r.categories[id]
	if !ok {
		return false
	}
	delete(r.bySlug, cat.Slug)
	delete(r.categories, id)
	return true
}
