package middleware

import (
	"net/http"
	"strings"

	"realestate-listings/internal/errors"
	"realestate-listings/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a bearer JWT signed with secret and requires the
// admin role.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, http.StatusUnauthorized, errors.ErrCodeUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := auth.ValidateJWT(parts[1], secret)
		if err != nil {
			abort(c, http.StatusUnauthorized, errors.ErrCodeUnauthorized, errors.MsgUnauthorized)
			return
		}
		if !claims.IsAdmin() {
			abort(c, http.StatusForbidden, errors.ErrCodeForbidden, errors.MsgForbidden)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"message": message,
			"code":    code,
		},
	})
}
