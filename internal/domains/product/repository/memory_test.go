package repository

import (
	"sync"
	"testing"
	"time"

	"animalshop-backend/internal/domains/product/model"
	"animalshop-backend/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo Repository, name string, stock int) *model.Product {
	t.Helper()
	now := time.Now()
	p := &model.Product{
		ID:        uuid.New(),
		Slug:      name,
		Name:      name,
		Category:  "food",
		Price:     decimal.NewFromFloat(9.99),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(p))
	return p
}

func stockOf(t *testing.T, repo Repository, id uuid.UUID) int {
	t.Helper()
	p, ok := repo.GetByID(id)
	require.True(t, ok)
	return p.Stock
}

func TestDebitStockAppliesAllOrNothing(t *testing.T) {
	repo := NewMemoryRepository()
	p := seed(t, repo, "a", 10)
	q := seed(t, repo, "b", 1)

	_, err := repo.DebitStock([]model.StockMutation{
		{ProductID: p.ID, Quantity: 5},
		{ProductID: q.ID, Quantity: 2},
	})
	require.Error(t, err)

	assert.Equal(t, 10, stockOf(t, repo, p.ID), "no partial debit")
	assert.Equal(t, 1, stockOf(t, repo, q.ID))
}

func TestDebitStockSnapshots(t *testing.T) {
	repo := NewMemoryRepository()
	p := seed(t, repo, "a", 10)

	snaps, err := repo.DebitStock([]model.StockMutation{{ProductID: p.ID, Quantity: 3}})
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "a", snaps[0].Name)
	assert.Equal(t, 3, snaps[0].Quantity)
	assert.Equal(t, "9.99", snaps[0].Price.StringFixed(2))
	assert.Equal(t, 7, stockOf(t, repo, p.ID))
}

func TestDebitStockMissingProduct(t *testing.T) {
	repo := NewMemoryRepository()
	missing := uuid.New()

	_, err := repo.DebitStock([]model.StockMutation{{ProductID: missing, Quantity: 1}})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, missing.String())
}

func TestCreditStockSkipsMissing(t *testing.T) {
	repo := NewMemoryRepository()
	p := seed(t, repo, "a", 5)

	repo.CreditStock([]model.StockMutation{
		{ProductID: p.ID, Quantity: 3},
		{ProductID: uuid.New(), Quantity: 99},
	})
	assert.Equal(t, 8, stockOf(t, repo, p.ID))
}

func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	repo := NewMemoryRepository()
	p := seed(t, repo, "a", 50)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.DebitStock([]model.StockMutation{{ProductID: p.ID, Quantity: 4}})
		}()
	}
	wg.Wait()

	// 50 / 4 = 12 full debits; the rest must fail cleanly.
	assert.Equal(t, 2, stockOf(t, repo, p.ID))
}

func TestSlugIndexFollowsUpdates(t *testing.T) {
	repo := NewMemoryRepository()
	p := seed(t, repo, "old-slug", 1)

	p.Slug = "new-slug"
	require.NoError(t, repo.Update(p))

	_, ok := repo.GetBySlug("old-slug")
	assert.False(t, ok)
	got, ok := repo.GetBySlug("new-slug")
	require.True(t, ok)
	assert.Equal(t, p.ID, got.ID)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo, "same", 1)

	now := time.Now()
	err := repo.Create(&model.Product{
		ID:        uuid.New(),
		Slug:      "same",
		Name:      "same",
		Category:  "food",
		Price:     decimal.NewFromFloat(1),
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.Error(t, err)
}
