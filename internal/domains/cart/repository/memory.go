package repository

import (
	"sync"

	"animalshop-backend/internal/domains/cart/model"
)

type memoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*model.Cart
}

func NewMemoryRepository() Repository {
	return &memoryRepository{carts: make(map[string]*model.Cart)}
}

func (r *memoryRepository) Get(owner model.Owner) (*model.Cart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[owner.Key()]
	if !ok {
		return nil, false
	}
	clone := *cart
	clone.Items = make([]model.LineItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	return &clone, true
}

func (r *memoryRepository) Save(cart *model.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *cart
	clone.Items = make([]model.LineItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	r.carts[cart.Owner.Key()] = &clone
}

func (r *memoryRepository) Delete(owner model.Owner) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[owner.Key()]; !ok {
		return false
	}
	delete(r.carts, owner.Key())
	return true
}
