package middleware

import (
	"realestate-listings/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns the last error a handler attached with c.Error into a
// standardized JSON response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := utils.LogAndMapError(c.Request.Context(), c.Errors.Last().Err, c.FullPath())
		c.JSON(appErr.HTTPStatus, gin.H{
			"error": gin.H{
				"message": appErr.UserMessage,
				"code":    appErr.Code,
			},
		})
	}
}
