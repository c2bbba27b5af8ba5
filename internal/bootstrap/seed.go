package bootstrap

import (
	"time"

	categorymodel "animalshop-backend/internal/domains/category/model"
	productmodel "animalshop-backend/internal/domains/product/model"
	usermodel "animalshop-backend/internal/domains/user/model"
	"animalshop-backend/pkg/container"
	"animalshop-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seed loads the demo catalog and accounts into the in-memory stores.
// Enabled via SEED_DATA; everything here is throwaway fixture data.
func Seed(c *container.Container) {
	now := time.Now()

	categories := []*categorymodel.Category{
		{ID: uuid.New(), Slug: "food", Name: "Food", Description: "Food for all animals", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Slug: "toys", Name: "Toys", Description: "Toys to keep pets busy", CreatedAt: now, UpdatedAt: now},
	}
	for _, cat := range categories {
		if err := c.CategoryRepo.Create(cat); err != nil {
			logger.Warn("Seed category skipped", map[string]interface{}{
				"slug":  cat.Slug,
				"error": err.Error(),
			})
		}
	}

	products := []*productmodel.Product{
		{
			ID:          uuid.New(),
			Slug:        "dog-food-premium",
			Name:        "Dog Food Premium",
			Description: "High quality dog food for adult dogs",
			Category:    "food",
			Price:       decimal.NewFromFloat(49.99),
			Stock:       100,
			IsFeatured:  true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.New(),
			Slug:        "cat-toy-mouse",
			Name:        "Cat Toy Mouse",
			Description: "Interactive toy mouse for cats",
			Category:    "toys",
			Price:       decimal.NewFromFloat(9.99),
			Stock:       50,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, p := range products {
		if err := c.ProductRepo.Create(p); err != nil {
			logger.Warn("Seed product skipped", map[string]interface{}{
				"slug":  p.Slug,
				"error": err.Error(),
			})
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Seed user password hashing failed", err, nil)
		return
	}

	users := []*usermodel.User{
		{ID: uuid.New(), Name: "Admin", Email: "admin@example.com", PasswordHash: string(hash), Role: usermodel.RoleAdmin, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "John Doe", Email: "john@example.com", PasswordHash: string(hash), Role: usermodel.RoleUser, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "Jane Smith", Email: "jane@example.com", PasswordHash: string(hash), Role: usermodel.RoleUser, CreatedAt: now, UpdatedAt: now},
	}
	for _, u := range users {
		if !c.UserRepo.Create(u) {
			logger.Warn("Seed user skipped", map[string]interface{}{"email": u.Email})
		}
	}

	logger.Info("Seed data loaded", map[string]interface{}{
		"categories": len(categories),
		"products":   len(products),
		"users":      len(users),
	})
}
