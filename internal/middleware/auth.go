package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/pkg/jwt"
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextUserName = "user_name"
	ContextUserRole = "user_role"
)

// JWTAuth requires a valid Bearer token and stores its claims in the context
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := verifyRequestToken(c, jwtManager)
		if !ok {
			common.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserName, claims.Name)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// OptionalJWTAuth stores claims when a valid token is present but never
// rejects the request. Lets public endpoints personalize responses.
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := verifyRequestToken(c, jwtManager); ok {
			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserName, claims.Name)
			c.Set(ContextUserRole, claims.Role)
		}
		c.Next()
	}
}

// RequireRole rejects authenticated requests whose role does not match
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			common.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

func verifyRequestToken(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	claims, err := jwtManager.VerifyToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}

// GetUserID returns the authenticated user's ID, or "" when anonymous
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
