package middleware

import (
	"strings"

	"animalshop-backend/internal/shared/response"
	"animalshop-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the auth middlewares
const (
	ContextKeyUserID          = "user_id"
	ContextKeyUserEmail       = "user_email"
	ContextKeyUserRole        = "user_role"
	ContextKeyIsAuthenticated = "is_authenticated"
)

// AuthMiddleware rejects requests without a valid Bearer token
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c, manager)
		if !ok {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "Invalid user ID in token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyUserEmail, claims.Email)
		c.Set(ContextKeyUserRole, claims.Role)
		c.Set(ContextKeyIsAuthenticated, true)
		c.Next()
	}
}

// OptionalAuthMiddleware allows both authenticated and anonymous users.
// An invalid or missing token is not an error; the request continues as
// anonymous so the guest identity can take over.
func OptionalAuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerToken(c, manager)
		if !ok {
			c.Set(ContextKeyIsAuthenticated, false)
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.Set(ContextKeyIsAuthenticated, false)
			c.Next()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyUserEmail, claims.Email)
		c.Set(ContextKeyUserRole, claims.Role)
		c.Set(ContextKeyIsAuthenticated, true)
		c.Next()
	}
}

func parseBearerToken(c *gin.Context, manager *jwt.Manager) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := manager.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}

// GetAuthenticatedUserID retrieves the user ID if the request is
// authenticated. Returns (uuid.Nil, false) for anonymous requests.
func GetAuthenticatedUserID(c *gin.Context) (uuid.UUID, bool) {
	if !IsAuthenticated(c) {
		return uuid.Nil, false
	}

	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}

	return userID, true
}

// IsAuthenticated checks if the request carries a verified identity
func IsAuthenticated(c *gin.Context) bool {
	isAuth, exists := c.Get(ContextKeyIsAuthenticated)
	if !exists {
		return false
	}
	auth, ok := isAuth.(bool)
	return ok && auth
}

// GetUserRole returns the role claim of the authenticated user
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get(ContextKeyUserRole)
	if !exists {
		return ""
	}
	r, ok := role.(string)
	if !ok {
		return ""
	}
	return r
}
