package repositories

import (
	"strings"
	"testing"

	"realestate-listings/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBuildWhere_EmptyFilterOnlyPublished(t *testing.T) {
	where, args := buildWhere(models.SearchFilter{}.Normalize())
	assert.Equal(t, "WHERE p.published = 1", where)
	assert.Empty(t, args)
}

func TestBuildSearchQuery_AllConstraints(t *testing.T) {
	f := models.SearchFilter{
		Type:         models.TypeVilla,
		ListingType:  models.ListingRent,
		MinPrice:     ptr(100.0),
		MaxPrice:     ptr(500.0),
		MinRooms:     ptr(2),
		MinBathrooms: ptr(1),
		CityID:       ptr(int64(3)),
		DistrictID:   ptr(int64(9)),
		Query:        "sea view",
		AmenityIDs:   []int64{7, 2, 7},
		Sort:         models.SortPriceAsc,
		Page:         3,
		Limit:        10,
	}.Normalize()

	query, args, err := buildSearchQuery(f)
	require.NoError(t, err)

	assert.Contains(t, query, "p.type = ?")
	assert.Contains(t, query, "p.listing_type = ?")
	assert.Contains(t, query, "p.price >= ?")
	assert.Contains(t, query, "p.price <= ?")
	assert.Contains(t, query, "p.rooms >= ?")
	assert.Contains(t, query, "p.bathrooms >= ?")
	assert.Contains(t, query, "p.city_id = ?")
	assert.Contains(t, query, "p.district_id = ?")
	assert.Equal(t, 2, strings.Count(query, "p.search_text LIKE ?"))
	assert.Contains(t, query, "pa.amenity_id IN (?, ?)")
	assert.Contains(t, query, "ORDER BY p.price IS NULL, p.price ASC, p.id ASC")
	assert.True(t, strings.HasSuffix(query, "LIMIT ? OFFSET ?"))

	assert.Equal(t, []any{
		"villa", "rent", 100.0, 500.0, 2, 1, int64(3), int64(9),
		"%sea%", "%view%", int64(2), int64(7), 2, 10, 20,
	}, args)
	assert.Equal(t, strings.Count(query, "?"), len(args))
}

func TestBuildSearchQuery_EscapesLikeWildcards(t *testing.T) {
	f := models.SearchFilter{Query: "100%_off!"}.Normalize()
	_, args, err := buildSearchQuery(f)
	require.NoError(t, err)
	assert.Equal(t, "%100!%!_off!!%", args[0])
}

func TestBuildCountQuery_IgnoresSortAndPage(t *testing.T) {
	a := models.SearchFilter{Type: models.TypeHouse, Sort: models.SortOldest, Page: 4}.Normalize()
	b := models.SearchFilter{Type: models.TypeHouse, Sort: models.SortFeatured, Page: 1, Limit: 50}.Normalize()

	qa, argsA, err := buildCountQuery(a)
	require.NoError(t, err)
	qb, argsB, err := buildCountQuery(b)
	require.NoError(t, err)

	assert.Equal(t, qa, qb)
	assert.Equal(t, argsA, argsB)
	assert.NotContains(t, qa, "ORDER BY")
	assert.NotContains(t, qa, "LIMIT")
}

func TestOrderBy(t *testing.T) {
	cases := map[models.SortMode]string{
		models.SortNewest:    "ORDER BY p.created_at DESC, p.id ASC",
		models.SortOldest:    "ORDER BY p.created_at ASC, p.id ASC",
		models.SortPriceAsc:  "ORDER BY p.price IS NULL, p.price ASC, p.id ASC",
		models.SortPriceDesc: "ORDER BY p.price IS NULL, p.price DESC, p.id ASC",
		models.SortFeatured:  "ORDER BY p.sort_order ASC, p.id ASC",
	}
	for mode, want := range cases {
		assert.Equal(t, want, orderBy(mode), mode)
	}
}
