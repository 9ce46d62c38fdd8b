package utils

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	apperrors "realestate-listings/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestBuildPaginationURL(t *testing.T) {
	params := url.Values{"type": {"villa"}, "page": {"9"}}
	got := BuildPaginationURL("/api/properties/search", 2, 12, params)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "/api/properties/search", u.Path)
	assert.Equal(t, "2", u.Query().Get("page"))
	assert.Equal(t, "12", u.Query().Get("limit"))
	assert.Equal(t, "villa", u.Query().Get("type"))
}

func TestPageLinks(t *testing.T) {
	next, prev := PageLinks("/s", 1, 10, 3, nil)
	require.NotNil(t, next)
	assert.Nil(t, prev)
	assert.Contains(t, *next, "page=2")

	next, prev = PageLinks("/s", 3, 10, 3, nil)
	assert.Nil(t, next)
	require.NotNil(t, prev)
	assert.Contains(t, *prev, "page=2")

	// beyond the last page, prev points at the last one
	_, prev = PageLinks("/s", 9, 10, 3, nil)
	require.NotNil(t, prev)
	assert.Contains(t, *prev, "page=3")
}

func TestLogAndMapError(t *testing.T) {
	assert.Nil(t, LogAndMapError(context.Background(), nil, "noop"))

	appErr := LogAndMapError(context.Background(), apperrors.NewValidationError("page", "must be at least 1"), "search")
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)

	appErr = LogAndMapError(context.Background(), fmt.Errorf("boom"), "search")
	assert.Equal(t, 500, appErr.HTTPStatus)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))
	err := WrapError(apperrors.ErrNotFound, "seed city %d", 3)
	assert.EqualError(t, err, "seed city 3: not found")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReadSeedData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"cities": [{"name": "Riyadh"}],
		"properties": [{"title": "Villa", "type": "villa", "listingType": "sale", "price": 10}],
		"settings": {"site_name": "Homes"}
	}`), 0o600))

	seed, err := ReadSeedData(path)
	require.NoError(t, err)
	require.Len(t, seed.Cities, 1)
	require.Len(t, seed.Properties, 1)
	assert.Equal(t, 10.0, *seed.Properties[0].Price)
	assert.Equal(t, "Homes", seed.Settings["site_name"])

	_, err = ReadSeedData(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
