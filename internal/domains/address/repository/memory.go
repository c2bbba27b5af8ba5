package repository

import (
	"sort"
	"sync"
	"time"

	"animalshop-backend/internal/domains/address/model"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu        sync.Mutex
	addresses map[uuid.UUID]*model.Address
}

func NewMemoryRepository() Repository {
	return &memoryRepository{addresses: make(map[uuid.UUID]*model.Address)}
}

func (r *memoryRepository) ListByUser(userID uuid.UUID) []*model.Address {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]*model.Address, 0)
	for _, a := range r.addresses {
		if a.UserID == userID {
			clone := *a
			items = append(items, &clone)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func (r *memoryRepository) GetOwned(id, userID uuid.UUID) (*model.Address, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.addresses[id]
	if !ok || a.UserID != userID {
		return nil, false
	}
	clone := *a
	return &clone, true
}

func (r *memoryRepository) Create(address *model.Address, asDefault bool) *model.Address {
	r.mu.Lock()
	defer r.mu.Unlock()

	hasAny := false
	for _, a := range r.addresses {
		if a.UserID == address.UserID {
			hasAny = true
			break
		}
	}

	clone := *address
	if !hasAny {
		clone.IsDefault = true
	} else if asDefault {
		r.clearDefaultLocked(address.UserID)
		clone.IsDefault = true
	} else {
		clone.IsDefault = false
	}

	r.addresses[clone.ID] = &clone
	result := clone
	return &result
}

func (r *memoryRepository) Update(address *model.Address, asDefault bool) *model.Address {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.addresses[address.ID]
	if !ok {
		return nil
	}

	clone := *address
	clone.IsDefault = current.IsDefault
	if asDefault && !current.IsDefault {
		r.clearDefaultLocked(address.UserID)
		clone.IsDefault = true
	}

	r.addresses[clone.ID] = &clone
	result := clone
	return &result
}

func (r *memoryRepository) Delete(id, userID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.addresses[id]
	if !ok || a.UserID != userID {
		return false
	}
	wasDefault := a.IsDefault
	delete(r.addresses, id)

	// Keep the invariant: if the default was removed and other addresses
	// remain, the oldest one becomes the new default.
	if wasDefault {
		var oldest *model.Address
		for _, remaining := range r.addresses {
			if remaining.UserID != userID {
				continue
			}
			if oldest == nil || remaining.CreatedAt.Before(oldest.CreatedAt) {
				oldest = remaining
			}
		}
		if oldest != nil {
			oldest.IsDefault = true
		}
	}
	return true
}

func (r *memoryRepository) SetDefault(id, userID uuid.UUID) (*model.Address, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.addresses[id]
	if !ok || a.UserID != userID {
		return nil, false
	}

	r.clearDefaultLocked(userID)
	a.IsDefault = true
	a.UpdatedAt = time.Now()
	clone := *a
	return &clone, true
}

func (r *memoryRepository) clearDefaultLocked(userID uuid.UUID) {
	for _, a := range r.addresses {
		if a.UserID == userID && a.IsDefault {
			a.IsDefault = false
		}
	}
}
