package service

import (
	"time"

	"animalshop-backend/internal/domains/address/model"
	"animalshop-backend/internal/domains/address/repository"
	"animalshop-backend/internal/shared/apperror"

	"github.com/google/uuid"
)

type addressService struct {
	repo repository.Repository
}

func NewAddressService(repo repository.Repository) Service {
	return &addressService{repo: repo}
}

func (s *addressService) List(userID uuid.UUID) ([]*model.Address, error) {
	return s.repo.ListByUser(userID), nil
}

func (s *addressService) Get(id, userID uuid.UUID) (*model.Address, error) {
	address, ok := s.repo.GetOwned(id, userID)
	if !ok {
		return nil, apperror.NotFound("Address")
	}
	return address, nil
}

func (s *addressService) Create(userID uuid.UUID, req model.CreateAddressRequest) (*model.Address, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	now := time.Now()
	address := &model.Address{
		ID:         uuid.New(),
		UserID:     userID,
		Label:      req.Label,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Address1:   req.Address1,
		Address2:   req.Address2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.repo.Create(address, req.IsDefault), nil
}

func (s *addressService) Update(id, userID uuid.UUID, req model.UpdateAddressRequest) (*model.Address, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	address, ok := s.repo.GetOwned(id, userID)
	if !ok {
		return nil, apperror.NotFound("Address")
	}

	if req.Label != nil {
		address.Label = *req.Label
	}
	if req.FirstName != nil {
		address.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		address.LastName = *req.LastName
	}
	if req.Address1 != nil {
		address.Address1 = *req.Address1
	}
	if req.Address2 != nil {
		address.Address2 = *req.Address2
	}
	if req.City != nil {
		address.City = *req.City
	}
	if req.State != nil {
		address.State = *req.State
	}
	if req.PostalCode != nil {
		address.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		address.Country = *req.Country
	}
	if req.Phone != nil {
		address.Phone = *req.Phone
	}
	address.UpdatedAt = time.Now()

	asDefault := req.IsDefault != nil && *req.IsDefault
	updated := s.repo.Update(address, asDefault)
	if updated == nil {
		return nil, apperror.NotFound("Address")
	}
	return updated, nil
}

func (s *addressService) Delete(id, userID uuid.UUID) error {
	if !s.repo.Delete(id, userID) {
		return apperror.NotFound("Address")
	}
	return nil
}

func (s *addressService) SetDefault(id, userID uuid.UUID) (*model.Address, error) {
	address, ok := s.repo.SetDefault(id, userID)
	if !ok {
		return nil, apperror.NotFound("Address")
	}
	return address, nil
}
