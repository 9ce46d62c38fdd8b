package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("user_id")})
	})
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(apperrors.NewValidationError("limit", "must be at most 50"))
	})
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("property", 3))
	})
	return r
}

func do(r http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(AuthMiddleware(secret))

	w := do(r, "/ok")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, errorCode(t, w))

	w = do(r, "/ok", "Authorization", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	wrong, err := auth.GenerateJWT("u1", auth.RoleAdmin, "other-secret", time.Hour)
	require.NoError(t, err)
	w = do(r, "/ok", "Authorization", "Bearer "+wrong)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	editor, err := auth.GenerateJWT("u2", "editor", secret, time.Hour)
	require.NoError(t, err)
	w = do(r, "/ok", "Authorization", "Bearer "+editor)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperrors.ErrCodeForbidden, errorCode(t, w))

	admin, err := auth.GenerateJWT("u3", auth.RoleAdmin, secret, time.Hour)
	require.NoError(t, err)
	w = do(r, "/ok", "Authorization", "Bearer "+admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"u3"}`, w.Body.String())
}

func TestErrorHandler(t *testing.T) {
	r := newRouter(ErrorHandler())

	w := do(r, "/fail")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, errorCode(t, w))

	w = do(r, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperrors.ErrCodePropertyNotFound, errorCode(t, w))

	w = do(r, "/ok")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := newRouter(LoggingMiddleware())

	w := do(r, "/ok")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = do(r, "/ok", RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 2)
	r := newRouter(RateLimitMiddleware(rl))

	assert.Equal(t, http.StatusOK, do(r, "/ok").Code)
	assert.Equal(t, http.StatusOK, do(r, "/ok").Code)
	w := do(r, "/ok")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, apperrors.ErrCodeRateLimited, errorCode(t, w))

	// a drained bucket is kept, a fresh one is pruned
	rl.getLimiter("10.0.0.9")
	assert.Equal(t, 1, rl.prune())
}

func TestPerMinute(t *testing.T) {
	assert.InDelta(t, 2.0, float64(PerMinute(120)), 0.0001)
}

func TestSecureHeaders(t *testing.T) {
	w := do(newRouter(SecureHeaders()), "/ok")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestMetricsMiddleware(t *testing.T) {
	r := newRouter(MetricsMiddleware())
	assert.Equal(t, http.StatusOK, do(r, "/ok").Code)
	assert.Equal(t, http.StatusNotFound, do(r, "/nope").Code)
}
