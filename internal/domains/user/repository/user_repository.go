package repository

import (
	"sort"
	"strings"
	"sync"

	"animalshop-backend/internal/domains/user/model"

	"github.com/google/uuid"
)

type Repository interface {
	List() []*model.User
	GetByID(id uuid.UUID) (*model.User, bool)
	GetByEmail(email string) (*model.User, bool)
	Create(user *model.User) bool
	Update(user *model.User) bool
}

type memoryRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*model.User
	byEmail map[string]uuid.UUID
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		users:   make(map[uuid.UUID]*model.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *memoryRepository) List() []*model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		items = append(items, &clone)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func (r *memoryRepository) GetByID(id uuid.UUID) (*model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	clone := *u
	return &clone, true
}

func (r *memoryRepository) GetByEmail(email string) (*model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, false
	}
	clone := *r.users[id]
	return &clone, true
}

func (r *memoryRepository) Create(user *model.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return false
	}
	clone := *user
	r.users[user.ID] = &clone
	r.byEmail[key] = user.ID
	return true
}

func (r *memoryRepository) Update(user *model.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.ID]
	if !ok {
		return false
	}
	newKey := normalizeEmail(user.Email)
	oldKey := normalizeEmail(current.Email)
	if newKey != oldKey {
		if _, taken := r.byEmail[newKey]; taken {
			return false
		}
		delete(r.byEmail, oldKey)
		r.byEmail[newKey] = user.ID
	}
	clone := *user
	r.users[user.ID] = &clone
	return true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
