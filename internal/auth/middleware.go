package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"flightbooking/internal/model"
)

// Context keys set by the middleware for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Middleware rejects requests without a valid Bearer token and stores the
// caller's identity on the gin context.
func Middleware(s *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := s.Validate(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole builds on Middleware and additionally checks the caller's role.
func RequireRole(s *Service, role model.Role) gin.HandlerFunc {
	validate := Middleware(s)
	return func(c *gin.Context) {
		validate(c)
		if c.IsAborted() {
			return
		}
		if got, _ := c.Get(ContextRole); got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		}
	}
}
