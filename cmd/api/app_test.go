package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"realestate-listings/pkg/auth"
	"realestate-listings/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "app-test-secret"

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Database.Driver = config.DriverMemory
	cfg.Database.SeedFile = "../../configs/seed.json"
	cfg.Cache.MaxSize = 100
	cfg.RateLimit.RequestsPerMinute = 6000
	cfg.RateLimit.Burst = 100
	cfg.JWT.Secret = testSecret

	app, err := NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app
}

func serve(app *App, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestApp_SeededSearch(t *testing.T) {
	app := newTestApp(t)

	w := serve(app, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(app, http.MethodGet, "/api/properties/search", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Items []struct {
			Title string `json:"title"`
		} `json:"items"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, int64(3), res.Meta.Total, "drafts are not listed")

	w = serve(app, http.MethodGet, "/api/properties/search?q="+url.QueryEscape("شقة"), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, int64(1), res.Meta.Total)

	w = serve(app, http.MethodGet, "/api/properties/search/count?price_max=100000", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":1}`, w.Body.String())

	w = serve(app, http.MethodGet, "/api/reference/amenities", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pool")

	w = serve(app, http.MethodGet, "/api/settings", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "site_name")
}

func TestApp_AdminRequiresToken(t *testing.T) {
	app := newTestApp(t)
	body := `{"title":"New flat","type":"apartment","listingType":"rent","price":50000}`

	w := serve(app, http.MethodPost, "/api/admin/properties", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := auth.GenerateJWT("admin-1", auth.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)
	w = serve(app, http.MethodPost, "/api/admin/properties", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = serve(app, http.MethodGet, "/api/properties/search/count", "", "")
	assert.JSONEq(t, `{"total":4}`, w.Body.String())

	w = serve(app, http.MethodGet, "/api/admin/cache/stats", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"maxSize":100`)
}

func TestApp_OperationalRoutes(t *testing.T) {
	app := newTestApp(t)
	w := serve(app, http.MethodGet, "/api/properties/1", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = serve(app, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
