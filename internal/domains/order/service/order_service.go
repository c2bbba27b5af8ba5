package service

import (
	"fmt"
	"time"

	addressrepo "animalshop-backend/internal/domains/address/repository"
	cartmodel "animalshop-backend/internal/domains/cart/model"
	cartrepo "animalshop-backend/internal/domains/cart/repository"
	"animalshop-backend/internal/domains/order/model"
	"animalshop-backend/internal/domains/order/repository"
	productmodel "animalshop-backend/internal/domains/product/model"
	productrepo "animalshop-backend/internal/domains/product/repository"
	"animalshop-backend/internal/shared/apperror"
	"animalshop-backend/internal/shared/response"
	"animalshop-backend/internal/shared/utils"
	"animalshop-backend/pkg/keylock"
	"animalshop-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderService struct {
	orders    repository.Repository
	carts     cartrepo.Repository
	products  productrepo.Repository
	addresses addressrepo.Repository
	locks     *keylock.KeyLock
}

// NewOrderService wires the checkout path. locks must be the same
// keyed-mutex instance the cart service uses, so a checkout excludes
// concurrent mutation of the same owner's cart.
func NewOrderService(
	orders repository.Repository,
	carts cartrepo.Repository,
	products productrepo.Repository,
	addresses addressrepo.Repository,
	locks *keylock.KeyLock,
) Service {
	return &orderService{
		orders:    orders,
		carts:     carts,
		products:  products,
		addresses: addresses,
		locks:     locks,
	}
}

func (s *orderService) Checkout(userID uuid.UUID, req cartmodel.CheckoutRequest) (*model.Order, error) {
	owner := cartmodel.UserOwner(userID)
	unlock := s.locks.Lock(owner.Key())
	defer unlock()

	cart, ok := s.carts.Get(owner)
	if !ok || len(cart.Items) == 0 {
		return nil, apperror.BadRequest("Cart is empty")
	}

	addressID := req.AddressID
	if addressID == nil {
		addressID = cart.ShippingAddressID
	}
	if addressID == nil {
		return nil, apperror.BadRequest("Shipping address is required")
	}
	if _, ok := s.addresses.GetOwned(*addressID, userID); !ok {
		return nil, apperror.NotFound("Address")
	}

	mutations := make([]productmodel.StockMutation, len(cart.Items))
	for i, item := range cart.Items {
		mutations[i] = productmodel.StockMutation{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	// The ledger validates every line before debiting any; a failure
	// here means no stock moved and the cart is still intact.
	snapshots, err := s.products.DebitStock(mutations)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, len(snapshots))
	total := decimal.Zero
	for i, snap := range snapshots {
		items[i] = model.OrderItem{
			ProductID:   snap.ProductID,
			ProductName: snap.Name,
			Price:       snap.Price,
			Quantity:    snap.Quantity,
		}
		total = total.Add(snap.Price.Mul(decimal.NewFromInt(int64(snap.Quantity))))
	}

	now := time.Now()
	order := &model.Order{
		ID:          uuid.New(),
		OrderNumber: s.orders.NextOrderNumber(),
		UserID:      userID,
		AddressID:   *addressID,
		Items:       items,
		Total:       total,
		Status:      model.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.orders.Create(order)
	s.carts.Delete(owner)

	logger.Info("Order created", map[string]interface{}{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
		"user_id":      userID.String(),
		"total":        order.Total.String(),
	})
	return order, nil
}

func (s *orderService) Get(id, userID uuid.UUID) (*model.Order, error) {
	order, ok := s.orders.GetByID(id)
	if !ok || order.UserID != userID {
		return nil, apperror.NotFound("Order")
	}
	return order, nil
}

func (s *orderService) ListByUser(userID uuid.UUID, query model.ListOrdersQuery) ([]*model.Order, *response.Meta, error) {
	orders := filterByStatus(s.orders.ListByUser(userID), query.Status)
	paged, meta := utils.Paginate(orders, query.Page, query.Limit)
	return paged, meta, nil
}

func (s *orderService) ListAll(query model.ListOrdersQuery) ([]*model.Order, *response.Meta, error) {
	orders := filterByStatus(s.orders.ListAll(), query.Status)
	paged, meta := utils.Paginate(orders, query.Page, query.Limit)
	return paged, meta, nil
}

func (s *orderService) UpdateStatus(id uuid.UUID, req model.UpdateStatusRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}
	target := model.Status(req.Status)

	return s.orders.Transition(id, func(order *model.Order) error {
		if !order.Status.CanTransitionTo(target) {
			return apperror.BadRequest(
				fmt.Sprintf("Cannot change status from %s to %s", order.Status, target))
		}
		if target == model.StatusCancelled {
			s.restock(order)
		}
		order.Status = target
		order.UpdatedAt = time.Now()
		return nil
	})
}

func (s *orderService) Cancel(id, userID uuid.UUID) (*model.Order, error) {
	return s.orders.Transition(id, func(order *model.Order) error {
		// Foreign orders look exactly like missing ones.
		if order.UserID != userID {
			return apperror.NotFound("Order")
		}
		if order.Status != model.StatusPending {
			return apperror.BadRequest("Only pending orders can be cancelled")
		}
		s.restock(order)
		order.Status = model.StatusCancelled
		order.UpdatedAt = time.Now()
		return nil
	})
}

// restock credits every line item's quantity back onto current stock.
// Runs inside a Transition callback, after all guards have passed.
func (s *orderService) restock(order *model.Order) {
	mutations := make([]productmodel.StockMutation, len(order.Items))
	for i, item := range order.Items {
		mutations[i] = productmodel.StockMutation{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	s.products.CreditStock(mutations)
}

func filterByStatus(orders []*model.Order, status string) []*model.Order {
	if status == "" {
		return orders
	}
	filtered := make([]*model.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == status {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
