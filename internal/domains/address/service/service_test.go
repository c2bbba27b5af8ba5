package service

import (
	"testing"

	"animalshop-backend/internal/domains/address/model"
	"animalshop-backend/internal/domains/address/repository"
	"animalshop-backend/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() Service {
	return NewAddressService(repository.NewMemoryRepository())
}

func validRequest() model.CreateAddressRequest {
	return model.CreateAddressRequest{
		FirstName:  "John",
		LastName:   "Doe",
		Address1:   "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    "US",
	}
}

func defaultCount(t *testing.T, s Service, userID uuid.UUID) int {
	t.Helper()
	addresses, err := s.List(userID)
	require.NoError(t, err)
	n := 0
	for _, a := range addresses {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	s := newService()
	userID := uuid.New()

	first, err := s.Create(userID, validRequest())
	require.NoError(t, err)
	assert.True(t, first.IsDefault, "first address is automatically default")

	second, err := s.Create(userID, validRequest())
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
	assert.Equal(t, 1, defaultCount(t, s, userID))
}

func TestCreateAsDefaultClearsPrior(t *testing.T) {
	s := newService()
	userID := uuid.New()

	first, err := s.Create(userID, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.IsDefault = true
	second, err := s.Create(userID, req)
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	reloaded, err := s.Get(first.ID, userID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
	assert.Equal(t, 1, defaultCount(t, s, userID))
}

func TestSetDefaultMovesTheFlag(t *testing.T) {
	s := newService()
	userID := uuid.New()

	first, err := s.Create(userID, validRequest())
	require.NoError(t, err)
	second, err := s.Create(userID, validRequest())
	require.NoError(t, err)

	updated, err := s.SetDefault(second.ID, userID)
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)

	reloaded, err := s.Get(first.ID, userID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
	assert.Equal(t, 1, defaultCount(t, s, userID))
}

func TestDeleteDefaultPromotesAnother(t *testing.T) {
	s := newService()
	userID := uuid.New()

	first, err := s.Create(userID, validRequest())
	require.NoError(t, err)
	_, err = s.Create(userID, validRequest())
	require.NoError(t, err)

	require.NoError(t, s.Delete(first.ID, userID))
	assert.Equal(t, 1, defaultCount(t, s, userID))
}

func TestDefaultsAreScopedPerUser(t *testing.T) {
	s := newService()
	alice := uuid.New()
	bob := uuid.New()

	_, err := s.Create(alice, validRequest())
	require.NoError(t, err)
	addr, err := s.Create(bob, validRequest())
	require.NoError(t, err)

	assert.True(t, addr.IsDefault)
	assert.Equal(t, 1, defaultCount(t, s, alice))
	assert.Equal(t, 1, defaultCount(t, s, bob))
}

func TestForeignAddressIsNotFound(t *testing.T) {
	s := newService()
	owner := uuid.New()
	stranger := uuid.New()

	addr, err := s.Create(owner, validRequest())
	require.NoError(t, err)

	_, err = s.Get(addr.ID, stranger)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	err = s.Delete(addr.ID, stranger)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestCreateValidation(t *testing.T) {
	s := newService()

	req := validRequest()
	req.FirstName = ""
	_, err := s.Create(uuid.New(), req)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}
