package service

import (
	"sync"
	"testing"
	"time"

	addressmodel "animalshop-backend/internal/domains/address/model"
	addressrepo "animalshop-backend/internal/domains/address/repository"
	cartmodel "animalshop-backend/internal/domains/cart/model"
	cartrepo "animalshop-backend/internal/domains/cart/repository"
	"animalshop-backend/internal/domains/order/model"
	orderrepo "animalshop-backend/internal/domains/order/repository"
	productmodel "animalshop-backend/internal/domains/product/model"
	productrepo "animalshop-backend/internal/domains/product/repository"
	"animalshop-backend/internal/shared/apperror"
	"animalshop-backend/pkg/keylock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	products  productrepo.Repository
	addresses addressrepo.Repository
	carts     cartrepo.Repository
	orders    orderrepo.Repository
	service   Service
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		products:  productrepo.NewMemoryRepository(),
		addresses: addressrepo.NewMemoryRepository(),
		carts:     cartrepo.NewMemoryRepository(),
		orders:    orderrepo.NewMemoryRepository(),
	}
	f.service = NewOrderService(f.orders, f.carts, f.products, f.addresses, keylock.New())
	return f
}

func (f *orderFixture) seedProduct(t *testing.T, name string, price float64, stock int) *productmodel.Product {
	t.Helper()
	now := time.Now()
	p := &productmodel.Product{
		ID:        uuid.New(),
		Slug:      name,
		Name:      name,
		Category:  "food",
		Price:     decimal.NewFromFloat(price),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.products.Create(p))
	return p
}

func (f *orderFixture) seedAddress(t *testing.T, userID uuid.UUID) *addressmodel.Address {
	t.Helper()
	now := time.Now()
	return f.addresses.Create(&addressmodel.Address{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: "John",
		LastName:  "Doe",
		Address1:  "1 Main St",
		City:      "Springfield",
		State:     "IL",
		CreatedAt: now,
		UpdatedAt: now,
	}, false)
}

func (f *orderFixture) seedCart(userID uuid.UUID, items ...cartmodel.LineItem) {
	now := time.Now()
	f.carts.Save(&cartmodel.Cart{
		ID:        uuid.New(),
		Owner:     cartmodel.UserOwner(userID),
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (f *orderFixture) stockOf(t *testing.T, id uuid.UUID) int {
	t.Helper()
	p, ok := f.products.GetByID(id)
	require.True(t, ok)
	return p.Stock
}

func TestCheckoutHappyPath(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()
	addr := f.seedAddress(t, userID)
	f.seedCart(userID, cartmodel.LineItem{ProductID: p.ID, Quantity: 2, AddedAt: time.Now()})

	order, err := f.service.Checkout(userID, cartmodel.CheckoutRequest{AddressID: &addr.ID})
	require.NoError(t, err)

	assert.Equal(t, int64(1001), order.OrderNumber, "first order number follows the seed")
	assert.Equal(t, model.StatusPending, order.Status)
	assert.Equal(t, "99.98", order.Total.StringFixed(2))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Dog Food Premium", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Equal(t, 98, f.stockOf(t, p.ID))

	_, cartLeft := f.carts.Get(cartmodel.UserOwner(userID))
	assert.False(t, cartLeft, "cart deleted after checkout")
}

func TestCheckoutUsesCartShippingAddress(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()
	addr := f.seedAddress(t, userID)

	now := time.Now()
	f.carts.Save(&cartmodel.Cart{
		ID:                uuid.New(),
		Owner:             cartmodel.UserOwner(userID),
		ShippingAddressID: &addr.ID,
		Items:             []cartmodel.LineItem{{ProductID: p.ID, Quantity: 1, AddedAt: now}},
		CreatedAt:         now,
		UpdatedAt:         now,
	})

	order, err := f.service.Checkout(userID, cartmodel.CheckoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, addr.ID, order.AddressID)
}

func TestCheckoutFailsWithoutAddress(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()
	f.seedCart(userID, cartmodel.LineItem{ProductID: p.ID, Quantity: 1, AddedAt: time.Now()})

	_, err := f.service.Checkout(userID, cartmodel.CheckoutRequest{})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Shipping address is required", appErr.Message)
}

func TestCheckoutFailsOnEmptyCart(t *testing.T) {
	f := newOrderFixture(t)
	userID := uuid.New()

	_, err := f.service.Checkout(userID, cartmodel.CheckoutRequest{})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Cart is empty", appErr.Message)
}

func TestCheckoutRejectsForeignAddress(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()
	foreign := f.seedAddress(t, uuid.New())
	f.seedCart(userID, cartmodel.LineItem{ProductID: p.ID, Quantity: 1, AddedAt: time.Now()})

	_, err := f.service.Checkout(userID, cartmodel.CheckoutRequest{AddressID: &foreign.ID})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestCheckoutIsAtomic(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	q := f.seedProduct(t, "Cat Toy Mouse", 9.99, 0)
	userID := uuid.New()
	addr := f.seedAddress(t, userID)
	now := time.Now()
	f.seedCart(userID,
		cartmodel.LineItem{ProductID: p.ID, Quantity: 2, AddedAt: now},
		cartmodel.LineItem{ProductID: q.ID, Quantity: 1, AddedAt: now},
	)

	_, err := f.service.Checkout(userID, cartmodel.CheckoutRequest{AddressID: &addr.ID})
	require.Error(t, err)

	// No partial debit, cart intact, no order created.
	assert.Equal(t, 100, f.stockOf(t, p.ID))
	assert.Equal(t, 0, f.stockOf(t, q.ID))
	cart, ok := f.carts.Get(cartmodel.UserOwner(userID))
	require.True(t, ok)
	assert.Len(t, cart.Items, 2)
	assert.Empty(t, f.orders.ListAll())
}

func TestCheckoutVanishedProductIsBadRequest(t *testing.T) {
	f := newOrderFixture(t)
	userID := uuid.New()
	addr := f.seedAddress(t, userID)
	missing := uuid.New()
	f.seedCart(userID, cartmodel.LineItem{ProductID: missing, Quantity: 1, AddedAt: time.Now()})

	_, err := f.service.Checkout(userID, cartmodel.CheckoutRequest{AddressID: &addr.ID})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status, "a product vanished from the catalog is the caller's problem, not a 404")
	assert.Contains(t, appErr.Message, missing.String())
}

func TestConcurrentCheckoutsCannotOverdraw(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 10)

	users := make([]uuid.UUID, 4)
	addrs := make([]*addressmodel.Address, 4)
	for i := range users {
		users[i] = uuid.New()
		addrs[i] = f.seedAddress(t, users[i])
		f.seedCart(users[i], cartmodel.LineItem{ProductID: p.ID, Quantity: 4, AddedAt: time.Now()})
	}

	var wg sync.WaitGroup
	succeeded := make([]bool, len(users))
	for i := range users {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.service.Checkout(users[i], cartmodel.CheckoutRequest{AddressID: &addrs[i].ID})
			succeeded[i] = err == nil
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, ok := range succeeded {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 2, wins, "10 stock only covers two 4-unit checkouts")
	assert.Equal(t, 10-4*wins, f.stockOf(t, p.ID))
	assert.GreaterOrEqual(t, f.stockOf(t, p.ID), 0, "stock never negative")
}

func TestOrderNumbersAreMonotonic(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()
	addr := f.seedAddress(t, userID)

	var numbers []int64
	for i := 0; i < 3; i++ {
		f.seedCart(userID, cartmodel.LineItem{ProductID: p.ID, Quantity: 1, AddedAt: time.Now()})
		order, err := f.service.Checkout(userID, cartmodel.CheckoutRequest{AddressID: &addr.ID})
		require.NoError(t, err)
		numbers = append(numbers, order.OrderNumber)
	}
	assert.Equal(t, []int64{1001, 1002, 1003}, numbers)
}

func TestStatusTransitionClosure(t *testing.T) {
	all := []model.Status{
		model.StatusPending,
		model.StatusProcessing,
		model.StatusShipped,
		model.StatusDelivered,
		model.StatusCancelled,
	}
	allowed := map[model.Status][]model.Status{
		model.StatusPending:    {model.StatusProcessing, model.StatusCancelled},
		model.StatusProcessing: {model.StatusShipped, model.StatusCancelled},
		model.StatusShipped:    {model.StatusDelivered},
		model.StatusDelivered:  {},
		model.StatusCancelled:  {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func (f *orderFixture) checkout(t *testing.T, userID uuid.UUID, p *productmodel.Product, qty int) *model.Order {
	t.Helper()
	addr := f.seedAddress(t, userID)
	f.seedCart(userID, cartmodel.LineItem{ProductID: p.ID, Quantity: qty, AddedAt: time.Now()})
	order, err := f.service.Checkout(userID, cartmodel.CheckoutRequest{AddressID: &addr.ID})
	require.NoError(t, err)
	return order
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	order := f.checkout(t, uuid.New(), p, 1)

	_, err := f.service.UpdateStatus(order.ID, model.UpdateStatusRequest{Status: "shipped"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Cannot change status from pending to shipped", appErr.Message)

	// pending -> processing -> shipped is the legal road.
	_, err = f.service.UpdateStatus(order.ID, model.UpdateStatusRequest{Status: "processing"})
	require.NoError(t, err)
	updated, err := f.service.UpdateStatus(order.ID, model.UpdateStatusRequest{Status: "shipped"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusShipped, updated.Status)

	// Stock is only restored on cancellation, never on shipping.
	assert.Equal(t, 99, f.stockOf(t, p.ID))
}

func TestUpdateStatusRejectsSelfTransition(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	order := f.checkout(t, uuid.New(), p, 1)

	_, err := f.service.UpdateStatus(order.ID, model.UpdateStatusRequest{Status: "pending"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Cannot change status from pending to pending", appErr.Message)
}

func TestAdminCancellationRestocksFromAnyStatus(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	order := f.checkout(t, uuid.New(), p, 5)
	assert.Equal(t, 95, f.stockOf(t, p.ID))

	_, err := f.service.UpdateStatus(order.ID, model.UpdateStatusRequest{Status: "processing"})
	require.NoError(t, err)

	cancelled, err := f.service.UpdateStatus(order.ID, model.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
	assert.Equal(t, 100, f.stockOf(t, p.ID), "full restock on cancellation")
}

func TestSelfCancelRestoresStock(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()
	order := f.checkout(t, userID, p, 3)
	assert.Equal(t, 97, f.stockOf(t, p.ID))

	cancelled, err := f.service.Cancel(order.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)
	assert.Equal(t, 100, f.stockOf(t, p.ID))
}

func TestSelfCancelOnlyPending(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()
	order := f.checkout(t, userID, p, 1)

	_, err := f.service.UpdateStatus(order.ID, model.UpdateStatusRequest{Status: "processing"})
	require.NoError(t, err)

	_, err = f.service.Cancel(order.ID, userID)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Only pending orders can be cancelled", appErr.Message)
	assert.Equal(t, 99, f.stockOf(t, p.ID), "no restock on refused cancel")
}

func TestSelfCancelForeignOrderLooksMissing(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	order := f.checkout(t, uuid.New(), p, 1)

	_, err := f.service.Cancel(order.ID, uuid.New())
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	_, err = f.service.Cancel(uuid.New(), uuid.New())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestGetCollapsesOwnership(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()
	order := f.checkout(t, userID, p, 1)

	got, err := f.service.Get(order.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = f.service.Get(order.ID, uuid.New())
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestOrderItemsAreSnapshots(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()
	order := f.checkout(t, userID, p, 1)

	// Reprice the product after checkout; the order must not move.
	updated, ok := f.products.GetByID(p.ID)
	require.True(t, ok)
	updated.Price = decimal.NewFromFloat(99.99)
	require.NoError(t, f.products.Update(updated))

	got, err := f.service.Get(order.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "49.99", got.Items[0].Price.StringFixed(2))
	assert.Equal(t, "49.99", got.Total.StringFixed(2))
}

func TestListByUserFiltersStatus(t *testing.T) {
	f := newOrderFixture(t)
	p := f.seedProduct(t, "Dog Food Premium", 49.99, 100)
	userID := uuid.New()

	first := f.checkout(t, userID, p, 1)
	f.checkout(t, userID, p, 1)

	_, err := f.service.Cancel(first.ID, userID)
	require.NoError(t, err)

	all, meta, err := f.service.ListByUser(userID, model.ListOrdersQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 2, meta.Total)

	cancelled, _, err := f.service.ListByUser(userID, model.ListOrdersQuery{Page: 1, Limit: 10, Status: "cancelled"})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, first.ID, cancelled[0].ID)
}
