package repository

import (
	"sort"
	"sync"
	"sync/atomic"

	"animalshop-backend/internal/domains/order/model"
	"animalshop-backend/internal/shared/apperror"

	"github.com/google/uuid"
)

// orderNumberSeed starts the sequence; the first order is 1001.
const orderNumberSeed = 1000

type memoryRepository struct {
	mu      sync.RWMutex
	orders  map[uuid.UUID]*model.Order
	counter atomic.Int64
}

func NewMemoryRepository() Repository {
	r := &memoryRepository{orders: make(map[uuid.UUID]*model.Order)}
	r.counter.Store(orderNumberSeed)
	return r
}

func (r *memoryRepository) Create(order *model.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := cloneOrder(order)
	r.orders[order.ID] = clone
}

func (r *memoryRepository) GetByID(id uuid.UUID) (*model.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, false
	}
	return cloneOrder(order), true
}

func (r *memoryRepository) ListByUser(userID uuid.UUID) []*model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			items = append(items, cloneOrder(o))
		}
	}
	sortNewestFirst(items)
	return items
}

func (r *memoryRepository) ListAll() []*model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		items = append(items, cloneOrder(o))
	}
	sortNewestFirst(items)
	return items
}

func (r *memoryRepository) NextOrderNumber() int64 {
	return r.counter.Add(1)
}

func (r *memoryRepository) Transition(id uuid.UUID, fn func(order *model.Order) error) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperror.NotFound("Order")
	}

	// fn works on a copy; the store only changes if fn accepts it.
	candidate := cloneOrder(order)
	if err := fn(candidate); err != nil {
		return nil, err
	}
	r.orders[id] = candidate
	return cloneOrder(candidate), nil
}

func cloneOrder(o *model.Order) *model.Order {
	clone := *o
	clone.Items = make([]model.OrderItem, len(o.Items))
	copy(clone.Items, o.Items)
	return &clone
}

func sortNewestFirst(orders []*model.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderNumber > orders[j].OrderNumber
	})
}
