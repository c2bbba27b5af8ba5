package service

import (
	"testing"
	"time"

	categorymodel "animalshop-backend/internal/domains/category/model"
	categoryrepo "animalshop-backend/internal/domains/category/repository"
	"animalshop-backend/internal/domains/product/model"
	"animalshop-backend/internal/domains/product/repository"
	"animalshop-backend/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T) (Service, categoryrepo.Repository) {
	t.Helper()
	categories := categoryrepo.NewMemoryRepository()
	now := time.Now()
	require.NoError(t, categories.Create(&categorymodel.Category{
		ID:        uuid.New(),
		Slug:      "food",
		Name:      "Food",
		CreatedAt: now,
		UpdatedAt: now,
	}))
	return NewProductService(repository.NewMemoryRepository(), categories), categories
}

func createRequest(name string) model.CreateProductRequest {
	return model.CreateProductRequest{
		Name:     name,
		Category: "food",
		Price:    decimal.NewFromFloat(49.99),
		Stock:    10,
	}
}

func TestCreateGeneratesSlug(t *testing.T) {
	s, _ := newFixture(t)

	p, err := s.Create(createRequest("Dog Food Premium"))
	require.NoError(t, err)
	assert.Equal(t, "dog-food-premium", p.Slug)

	// Same name gets a suffixed slug.
	second, err := s.Create(createRequest("Dog Food Premium"))
	require.NoError(t, err)
	assert.Equal(t, "dog-food-premium-2", second.Slug)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	s, _ := newFixture(t)

	req := createRequest("Dog Food Premium")
	req.Category = "does-not-exist"
	_, err := s.Create(req)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestCreateRejectsNonPositivePrice(t *testing.T) {
	s, _ := newFixture(t)

	req := createRequest("Dog Food Premium")
	req.Price = decimal.Zero
	_, err := s.Create(req)
	assert.Error(t, err)
}

func TestGetByIdentifier(t *testing.T) {
	s, _ := newFixture(t)
	p, err := s.Create(createRequest("Dog Food Premium"))
	require.NoError(t, err)

	byID, err := s.GetByIdentifier(p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, p.ID, byID.ID)

	bySlug, err := s.GetByIdentifier("dog-food-premium")
	require.NoError(t, err)
	assert.Equal(t, p.ID, bySlug.ID)

	_, err = s.GetByIdentifier("no-such-product")
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestListFilters(t *testing.T) {
	s, categories := newFixture(t)
	now := time.Now()
	require.NoError(t, categories.Create(&categorymodel.Category{
		ID:        uuid.New(),
		Slug:      "toys",
		Name:      "Toys",
		CreatedAt: now,
		UpdatedAt: now,
	}))

	_, err := s.Create(createRequest("Dog Food Premium"))
	require.NoError(t, err)

	toy := createRequest("Cat Toy Mouse")
	toy.Category = "toys"
	toy.IsFeatured = true
	_, err = s.Create(toy)
	require.NoError(t, err)

	all, meta, err := s.List(model.ListProductsQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 2, meta.Total)

	toys, _, err := s.List(model.ListProductsQuery{Page: 1, Limit: 10, Category: "toys"})
	require.NoError(t, err)
	require.Len(t, toys, 1)
	assert.Equal(t, "cat-toy-mouse", toys[0].Slug)

	featured := true
	flagged, _, err := s.List(model.ListProductsQuery{Page: 1, Limit: 10, Featured: &featured})
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	assert.Equal(t, "cat-toy-mouse", flagged[0].Slug)
}

func TestUpdateRenameRegeneratesSlug(t *testing.T) {
	s, _ := newFixture(t)
	p, err := s.Create(createRequest("Dog Food Premium"))
	require.NoError(t, err)

	name := "Dog Food Deluxe"
	updated, err := s.Update(p.ID, model.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "dog-food-deluxe", updated.Slug)
}

func TestDeleteMissingProduct(t *testing.T) {
	s, _ := newFixture(t)
	err := s.Delete(uuid.New())
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}
