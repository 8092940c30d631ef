package middleware

import (
	"net/http"
	"strings"

	"travelgo/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey   = "userID"
	UserRoleKey = "userRole"
)

// TokenValidator is satisfied by services.TokenService.
type TokenValidator interface {
	Validate(token string) (*services.Claims, error)
}

// AuthRequired accepts "Authorization: Bearer <jwt>" and stores the caller in
// the gin context for RequireRoles and the handlers.
func AuthRequired(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			abortUnauthorized(c, "silakan login terlebih dahulu")
			return
		}
		claims, err := tokens.Validate(strings.TrimSpace(raw))
		if err != nil {
			abortUnauthorized(c, "token tidak valid atau kedaluwarsa")
			return
		}
		c.Set(UserIDKey, claims.UserID)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
