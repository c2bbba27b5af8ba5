package service

import (
	"time"

	"animalshop-backend/internal/domains/user/model"
	"animalshop-backend/internal/domains/user/repository"
	"animalshop-backend/internal/shared/apperror"
	"animalshop-backend/internal/shared/response"
	"animalshop-backend/internal/shared/utils"
	"animalshop-backend/pkg/jwt"
	"animalshop-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// CartMerger reconciles a guest cart into a user cart at login time.
type CartMerger interface {
	MergeGuestCart(userID uuid.UUID, guestID string) error
}

type Service interface {
	Register(req model.RegisterRequest) (*model.AuthResponse, error)
	Login(req model.LoginRequest, guestID string) (*model.AuthResponse, error)
	GetByID(id uuid.UUID) (*model.User, error)
	List(page, limit int) ([]*model.User, *response.Meta, error)
	UpdateRole(id uuid.UUID, req model.UpdateRoleRequest) (*model.User, error)
}

type userService struct {
	repo   repository.Repository
	tokens *jwt.Manager
	carts  CartMerger
}

func NewUserService(repo repository.Repository, tokens *jwt.Manager, carts CartMerger) Service {
	return &userService{repo: repo, tokens: tokens, carts: carts}
}

func (s *userService) Register(req model.RegisterRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal("Failed to hash password")
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if !s.repo.Create(user) {
		return nil, apperror.BadRequest("Email already registered")
	}

	token, err := s.tokens.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal("Failed to generate token")
	}
	return &model.AuthResponse{User: user.Sanitized(), Token: token}, nil
}

func (s *userService) Login(req model.LoginRequest, guestID string) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	user, ok := s.repo.GetByEmail(req.Email)
	if !ok {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	// A guest cart presented at login is folded into the user's cart.
	// Merge problems are logged, never surfaced: the login succeeded.
	if guestID != "" && s.carts != nil {
		if err := s.carts.MergeGuestCart(user.ID, guestID); err != nil {
			logger.Warn("Guest cart merge failed", map[string]interface{}{
				"user_id":  user.ID.String(),
				"guest_id": guestID,
				"error":    err.Error(),
			})
		}
	}

	token, err := s.tokens.GenerateToken(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal("Failed to generate token")
	}
	return &model.AuthResponse{User: user.Sanitized(), Token: token}, nil
}

func (s *userService) GetByID(id uuid.UUID) (*model.User, error) {
	user, ok := s.repo.GetByID(id)
	if !ok {
		return nil, apperror.NotFound("User")
	}
	return user.Sanitized(), nil
}

func (s *userService) List(page, limit int) ([]*model.User, *response.Meta, error) {
	users := s.repo.List()
	sanitized := make([]*model.User, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitized()
	}
	paged, meta := utils.Paginate(sanitized, page, limit)
	return paged, meta, nil
}

func (s *userService) UpdateRole(id uuid.UUID, req model.UpdateRoleRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWithDetails("Validation failed", err)
	}

	user, ok := s.repo.GetByID(id)
	if !ok {
		return nil, apperror.NotFound("User")
	}
	user.Role = req.Role
	user.UpdatedAt = time.Now()
	if !s.repo.Update(user) {
		return nil, apperror.NotFound("User")
	}
	return user.Sanitized(), nil
}
