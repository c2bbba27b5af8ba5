package main

import (
	"net/http"
	"time"

	"animalshop-backend/internal/shared/middleware"
	"animalshop-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupAddressRoutes(v1, c)
		setupCartRoutes(v1, c)
		setupOrderRoutes(v1, c)
		setupAdminOrderRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)

		admin := auth.Group("/users")
		admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
		{
			admin.GET("", c.UserHandler.ListUsers)
			admin.PATCH("/:id/role", c.UserHandler.UpdateRole)
		}
	}
}

func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		products.GET("", c.ProductHandler.List)
		products.GET("/:identifier", c.ProductHandler.Get)
	}

	adminProducts := v1.Group("/products")
	adminProducts.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		adminProducts.POST("", c.ProductHandler.Create)
		adminProducts.PUT("/:id", c.ProductHandler.Update)
		adminProducts.DELETE("/:id", c.ProductHandler.Delete)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:identifier", c.CategoryHandler.Get)
	}

	adminCategories := v1.Group("/categories")
	adminCategories.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		adminCategories.POST("", c.CategoryHandler.Create)
		adminCategories.PUT("/:id", c.CategoryHandler.Update)
		adminCategories.DELETE("/:id", c.CategoryHandler.Delete)
	}
}

func setupAddressRoutes(v1 *gin.RouterGroup, c *container.Container) {
	addresses := v1.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		addresses.GET("", c.AddressHandler.List)
		addresses.POST("", c.AddressHandler.Create)
		addresses.GET("/:id", c.AddressHandler.Get)
		addresses.PUT("/:id", c.AddressHandler.Update)
		addresses.DELETE("/:id", c.AddressHandler.Delete)
		addresses.POST("/:id/default", c.AddressHandler.SetDefault)
	}
}

func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// The cart serves both authenticated users and guests: a valid
	// bearer token wins, otherwise the X-Guest-Id header identifies
	// the owner.
	cart := v1.Group("/cart")
	cart.Use(
		middleware.OptionalAuthMiddleware(c.JWTManager),
		middleware.GuestMiddleware(),
	)
	{
		cart.GET("", c.CartHandler.Get)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PATCH("/items/:productId", c.CartHandler.UpdateItem)
		cart.DELETE("/items/:productId", c.CartHandler.RemoveItem)
		cart.DELETE("", c.CartHandler.Clear)
	}

	authCart := v1.Group("/cart")
	authCart.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authCart.PUT("/shipping-address", c.CartHandler.SetShippingAddress)
		authCart.POST("/checkout", c.CartHandler.Checkout)
	}
}

func setupOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	orders := v1.Group("/orders")
	orders.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		orders.GET("", c.OrderHandler.List)
		orders.GET("/:id", c.OrderHandler.Get)
		orders.POST("/:id/cancel", c.OrderHandler.Cancel)
	}
}

func setupAdminOrderRoutes(v1 *gin.RouterGroup, c *container.Container) {
	adminOrders := v1.Group("/admin/orders")
	adminOrders.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		adminOrders.GET("", c.OrderHandler.ListAll)
		adminOrders.PATCH("/:id/status", c.OrderHandler.UpdateStatus)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"timestamp":   time.Now().Format(time.RFC3339),
			"version":     appCtx.Config.App.Version,
			"environment": appCtx.Config.App.Environment,
		})
	}
}
