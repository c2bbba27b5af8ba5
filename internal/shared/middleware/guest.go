package middleware

import (
	"github.com/gin-gonic/gin"
)

// ContextKeyGuestID holds the anonymous guest identity, if any
const ContextKeyGuestID = "guest_id"

// GuestHeader is the header anonymous clients send to identify their cart
const GuestHeader = "X-Guest-Id"

// GuestMiddleware extracts the guest identity from the X-Guest-Id header.
// It never fails; whether a guest identity is acceptable is decided by the
// handler (cart operations accept it, checkout does not).
func GuestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if guestID := c.GetHeader(GuestHeader); guestID != "" {
			c.Set(ContextKeyGuestID, guestID)
		}
		c.Next()
	}
}

// GetGuestID retrieves the guest identity from context, empty if absent
func GetGuestID(c *gin.Context) string {
	value, exists := c.Get(ContextKeyGuestID)
	if !exists {
		return ""
	}
	guestID, ok := value.(string)
	if !ok {
		return ""
	}
	return guestID
}
