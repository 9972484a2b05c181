package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDHeader carries the opaque identity the chat platform resolved
	// for the request. The core never interprets it beyond equality.
	UserIDHeader = "X-User-Id"

	userIDContextKey = "userID"
)

func NewIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing user identity"})
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

func userIDFromContext(c *gin.Context) string {
	return c.GetString(userIDContextKey)
}
