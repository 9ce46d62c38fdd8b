package middleware

import (
	"time"

	"realestate-listings/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// LoggingMiddleware tags each request with an id, stores a request-scoped
// logger in the request context and logs one line when the request ends.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set("request_id", requestID)

		reqLogger := logger.L().With().Str(logger.FieldRequestID, requestID).Logger()
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		event := reqLogger.Info()
		switch {
		case status >= 500:
			event = reqLogger.Error()
		case status >= 400:
			event = reqLogger.Warn()
		}
		event.
			Str(logger.FieldMethod, c.Request.Method).
			Str(logger.FieldPath, c.Request.URL.Path).
			Int(logger.FieldStatus, status).
			Int64(logger.FieldLatency, time.Since(start).Milliseconds()).
			Str(logger.FieldClientIP, c.ClientIP()).
			Msg("request completed")
	}
}
