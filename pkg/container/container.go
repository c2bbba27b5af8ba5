package container

import (
	"fmt"

	"animalshop-backend/internal/config"
	"animalshop-backend/pkg/jwt"
	"animalshop-backend/pkg/keylock"
	"animalshop-backend/pkg/logger"

	addressHandler "animalshop-backend/internal/domains/address/handler"
	addressRepo "animalshop-backend/internal/domains/address/repository"
	addressService "animalshop-backend/internal/domains/address/service"
	cartHandler "animalshop-backend/internal/domains/cart/handler"
	cartRepo "animalshop-backend/internal/domains/cart/repository"
	cartService "animalshop-backend/internal/domains/cart/service"
	categoryHandler "animalshop-backend/internal/domains/category/handler"
	categoryRepo "animalshop-backend/internal/domains/category/repository"
	categoryService "animalshop-backend/internal/domains/category/service"
	orderHandler "animalshop-backend/internal/domains/order/handler"
	orderRepo "animalshop-backend/internal/domains/order/repository"
	orderService "animalshop-backend/internal/domains/order/service"
	productHandler "animalshop-backend/internal/domains/product/handler"
	productRepo "animalshop-backend/internal/domains/product/repository"
	productService "animalshop-backend/internal/domains/product/service"
	userHandler "animalshop-backend/internal/domains/user/handler"
	userRepo "animalshop-backend/internal/domains/user/repository"
	userService "animalshop-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton; initialization order is config → repositories → services →
// handlers.
type Container struct {
	Config     *config.Config
	JWTManager *jwt.Manager

	// CartLocks serializes per-owner cart access. The cart and order
	// services share this instance so checkout excludes concurrent
	// mutation of the same cart.
	CartLocks *keylock.KeyLock

	ProductRepo  productRepo.Repository
	CategoryRepo categoryRepo.Repository
	AddressRepo  addressRepo.Repository
	UserRepo     userRepo.Repository
	CartRepo     cartRepo.Repository
	OrderRepo    orderRepo.Repository

	ProductService  productService.Service
	CategoryService categoryService.Service
	AddressService  addressService.Service
	UserService     userService.Service
	CartService     cartService.Service
	OrderService    orderService.Service

	ProductHandler  *productHandler.ProductHandler
	CategoryHandler *categoryHandler.CategoryHandler
	AddressHandler  *addressHandler.AddressHandler
	UserHandler     *userHandler.UserHandler
	CartHandler     *cartHandler.CartHandler
	OrderHandler    *orderHandler.OrderHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	c.CartLocks = keylock.New()

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("Container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	c.ProductRepo = productRepo.NewMemoryRepository()
	c.CategoryRepo = categoryRepo.NewMemoryRepository()
	c.AddressRepo = addressRepo.NewMemoryRepository()
	c.UserRepo = userRepo.NewMemoryRepository()
	c.CartRepo = cartRepo.NewMemoryRepository()
	c.OrderRepo = orderRepo.NewMemoryRepository()
}

func (c *Container) initServices() {
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.ProductService = productService.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.AddressService = addressService.NewAddressService(c.AddressRepo)

	c.CartService = cartService.NewCartService(
		c.CartRepo,
		c.ProductRepo,
		c.AddressRepo,
		c.CartLocks,
	)
	c.OrderService = orderService.NewOrderService(
		c.OrderRepo,
		c.CartRepo,
		c.ProductRepo,
		c.AddressRepo,
		c.CartLocks,
	)

	// The user service only needs the merge entry point from carts.
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.CartService)
}

func (c *Container) initHandlers() {
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.AddressHandler = addressHandler.NewAddressHandler(c.AddressService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CartHandler = cartHandler.NewCartHandler(c.CartService, c.OrderService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
}
