package service

import (
	"fmt"
	"time"

	addressrepo "animalshop-backend/internal/domains/address/repository"
	"animalshop-backend/internal/domains/cart/model"
	"animalshop-backend/internal/domains/cart/repository"
	productrepo "animalshop-backend/internal/domains/product/repository"
	"animalshop-backend/internal/shared/apperror"
	"animalshop-backend/pkg/keylock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type cartService struct {
	carts     repository.Repository
	products  productrepo.Repository
	addresses addressrepo.Repository
	locks     *keylock.KeyLock
}

func NewCartService(
	carts repository.Repository,
	products productrepo.Repository,
	addresses addressrepo.Repository,
	locks *keylock.KeyLock,
) Service {
	return &cartService{
		carts:     carts,
		products:  products,
		addresses: addresses,
		locks:     locks,
	}
}

func (s *cartService) Get(owner model.Owner) (*model.CartResponse, error) {
	cart, ok := s.carts.Get(owner)
	if !ok {
		return model.EmptyCartResponse(), nil
	}
	return s.buildResponse(cart), nil
}

func (s *cartService) AddItem(owner model.Owner, req model.AddItemRequest) (*model.CartResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	unlock := s.locks.Lock(owner.Key())
	defer unlock()

	product, ok := s.products.GetByID(req.ProductID)
	if !ok {
		return nil, apperror.NotFound("Product")
	}

	cart, exists := s.carts.Get(owner)
	if !exists {
		now := time.Now()
		cart = &model.Cart{
			ID:        uuid.New(),
			Owner:     owner,
			Items:     []model.LineItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	inCart := 0
	idx := cart.FindItem(req.ProductID)
	if idx >= 0 {
		inCart = cart.Items[idx].Quantity
	}

	// The check is additive: what's already in the cart counts against
	// the requested quantity. The cart is untouched on failure.
	if inCart+req.Quantity > product.Stock {
		return nil, apperror.BadRequestWithDetails(
			fmt.Sprintf("Insufficient stock. Available: %d, In cart: %d, Requested: %d",
				product.Stock, inCart, req.Quantity),
			map[string]interface{}{
				"productId": product.ID,
				"available": product.Stock,
				"inCart":    inCart,
				"requested": req.Quantity,
			},
		)
	}

	if idx >= 0 {
		cart.Items[idx].Quantity += req.Quantity
	} else {
		cart.Items = append(cart.Items, model.LineItem{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			AddedAt:   time.Now(),
		})
	}
	cart.UpdatedAt = time.Now()
	s.carts.Save(cart)

	return s.buildResponse(cart), nil
}

func (s *cartService) UpdateItem(owner model.Owner, productID uuid.UUID, req model.UpdateItemRequest) (*model.CartResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	unlock := s.locks.Lock(owner.Key())
	defer unlock()

	cart, ok := s.carts.Get(owner)
	if !ok {
		return nil, apperror.NotFound("Cart")
	}
	idx := cart.FindItem(productID)
	if idx < 0 {
		return nil, apperror.NotFound("Cart item")
	}

	product, ok := s.products.GetByID(productID)
	if !ok {
		return nil, apperror.NotFound("Product")
	}

	// Absolute check: the new quantity replaces the old one.
	if req.Quantity > product.Stock {
		return nil, apperror.BadRequestWithDetails(
			fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", product.Stock, req.Quantity),
			map[string]interface{}{
				"productId": product.ID,
				"available": product.Stock,
				"requested": req.Quantity,
			},
		)
	}

	cart.Items[idx].Quantity = req.Quantity
	cart.UpdatedAt = time.Now()
	s.carts.Save(cart)

	return s.buildResponse(cart), nil
}

func (s *cartService) RemoveItem(owner model.Owner, productID uuid.UUID) (*model.CartResponse, error) {
	unlock := s.locks.Lock(owner.Key())
	defer unlock()

	cart, ok := s.carts.Get(owner)
	if !ok {
		return nil, apperror.NotFound("Cart")
	}
	idx := cart.FindItem(productID)
	if idx < 0 {
		return nil, apperror.NotFound("Cart item")
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.UpdatedAt = time.Now()
	s.carts.Save(cart)

	return s.buildResponse(cart), nil
}

func (s *cartService) Clear(owner model.Owner) error {
	unlock := s.locks.Lock(owner.Key())
	defer unlock()

	s.carts.Delete(owner)
	return nil
}

func (s *cartService) SetShippingAddress(owner model.Owner, addressID uuid.UUID) (*model.CartResponse, error) {
	if !owner.IsUser() {
		return nil, apperror.BadRequest("Authentication required to set a shipping address")
	}

	unlock := s.locks.Lock(owner.Key())
	defer unlock()

	if _, ok := s.addresses.GetOwned(addressID, owner.UserID()); !ok {
		return nil, apperror.NotFound("Address")
	}

	cart, exists := s.carts.Get(owner)
	if !exists {
		now := time.Now()
		cart = &model.Cart{
			ID:        uuid.New(),
			Owner:     owner,
			Items:     []model.LineItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	id := addressID
	cart.ShippingAddressID = &id
	cart.UpdatedAt = time.Now()
	s.carts.Save(cart)

	return s.buildResponse(cart), nil
}

func (s *cartService) MergeCarts(userID uuid.UUID, guestID string) (*model.CartResponse, error) {
	user := model.UserOwner(userID)
	guest := model.GuestOwner(guestID)

	// Both carts must be quiet while they reconcile; sorted acquisition
	// keeps two concurrent merges from deadlocking.
	unlock := s.locks.LockPair(user.Key(), guest.Key())
	defer unlock()

	guestCart, hasGuest := s.carts.Get(guest)
	if !hasGuest {
		userCart, hasUser := s.carts.Get(user)
		if !hasUser {
			return model.EmptyCartResponse(), nil
		}
		return s.buildResponse(userCart), nil
	}

	userCart, hasUser := s.carts.Get(user)
	if !hasUser {
		// Reassign in place: the guest cart becomes the user's cart.
		s.carts.Delete(guest)
		guestCart.Owner = user
		s.revalidateStock(guestCart)
		guestCart.UpdatedAt = time.Now()
		s.carts.Save(guestCart)
		return s.buildResponse(guestCart), nil
	}

	for _, guestItem := range guestCart.Items {
		if idx := userCart.FindItem(guestItem.ProductID); idx >= 0 {
			userCart.Items[idx].Quantity += guestItem.Quantity
		} else {
			userCart.Items = append(userCart.Items, guestItem)
		}
	}
	s.carts.Delete(guest)

	s.revalidateStock(userCart)
	userCart.UpdatedAt = time.Now()
	s.carts.Save(userCart)

	return s.buildResponse(userCart), nil
}

func (s *cartService) MergeGuestCart(userID uuid.UUID, guestID string) error {
	_, err := s.MergeCarts(userID, guestID)
	return err
}

// revalidateStock self-heals a just-merged cart: two independently valid
// carts can jointly exceed stock. Items whose product vanished are
// dropped; quantities above stock are clamped; clamped-to-zero items are
// dropped. This mutates the cart, not just its view.
func (s *cartService) revalidateStock(cart *model.Cart) {
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		product, ok := s.products.GetByID(item.ProductID)
		if !ok {
			continue
		}
		if item.Quantity > product.Stock {
			item.Quantity = product.Stock
		}
		if item.Quantity <= 0 {
			continue
		}
		kept = append(kept, item)
	}
	cart.Items = kept
}

// buildResponse joins stored line items with live product data. Items
// whose product no longer exists are skipped in the view only.
func (s *cartService) buildResponse(cart *model.Cart) *model.CartResponse {
	items := make([]model.EnrichedItem, 0, len(cart.Items))
	itemCount := 0
	total := decimal.Zero

	for _, item := range cart.Items {
		product, ok := s.products.GetByID(item.ProductID)
		if !ok {
			continue
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, model.EnrichedItem{
			ProductID: product.ID,
			Name:      product.Name,
			Slug:      product.Slug,
			Image:     product.Image,
			Price:     product.Price,
			Stock:     product.Stock,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
			AddedAt:   item.AddedAt,
		})
		itemCount += item.Quantity
		total = total.Add(lineTotal)
	}

	createdAt := cart.CreatedAt
	updatedAt := cart.UpdatedAt
	resp := &model.CartResponse{
		ID:                cart.ID.String(),
		Items:             items,
		ItemCount:         itemCount,
		Total:             total,
		ShippingAddressID: cart.ShippingAddressID,
		CreatedAt:         &createdAt,
		UpdatedAt:         &updatedAt,
	}

	// Best effort: a shipping address deleted since it was attached is
	// simply omitted from the view.
	if cart.ShippingAddressID != nil && cart.Owner.IsUser() {
		if addr, ok := s.addresses.GetOwned(*cart.ShippingAddressID, cart.Owner.UserID()); ok {
			resp.ShippingAddress = &model.ShippingAddressView{
				ID:         addr.ID,
				FirstName:  addr.FirstName,
				LastName:   addr.LastName,
				Address1:   addr.Address1,
				Address2:   addr.Address2,
				City:       addr.City,
				State:      addr.State,
				PostalCode: addr.PostalCode,
				Country:    addr.Country,
			}
		}
	}
	return resp
}
