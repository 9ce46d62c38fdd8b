package validators

import (
	"testing"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestValidateSearch_Accepts(t *testing.T) {
	v := NewPropertyValidator()

	filters := []models.SearchFilter{
		{},
		{Type: models.TypeVilla, ListingType: models.ListingRent, Sort: models.SortPriceDesc},
		{MinPrice: ptr(0.0), MaxPrice: ptr(500000.0), MinRooms: ptr(0), MinBathrooms: ptr(1)},
		{MinPrice: ptr(900.0), MaxPrice: ptr(100.0)},
		{AmenityIDs: []int64{1, 2}, CityID: ptr(int64(3)), Query: "sea view", Limit: 50},
	}
	for _, f := range filters {
		n := f.Normalize()
		assert.NoError(t, v.ValidateSearch(&n), "%+v", f)
	}
}

func TestValidateSearch_Rejects(t *testing.T) {
	v := NewPropertyValidator()

	cases := map[string]struct {
		filter models.SearchFilter
		field  string
	}{
		"bad type":          {models.SearchFilter{Type: "castle"}, "type"},
		"bad listing type":  {models.SearchFilter{ListingType: "lease"}, "listingType"},
		"bad sort":          {models.SearchFilter{Sort: "random"}, "sort"},
		"negative price":    {models.SearchFilter{MinPrice: ptr(-1.0)}, "minPrice"},
		"negative max":      {models.SearchFilter{MaxPrice: ptr(-5.0)}, "maxPrice"},
		"negative rooms":    {models.SearchFilter{MinRooms: ptr(-1)}, "minRooms"},
		"negative baths":    {models.SearchFilter{MinBathrooms: ptr(-2)}, "minBathrooms"},
		"page below one":    {models.SearchFilter{Page: -1}, "page"},
		"limit above max":   {models.SearchFilter{Limit: 51}, "limit"},
		"negative limit":    {models.SearchFilter{Limit: -3}, "limit"},
		"zero amenity id":   {models.SearchFilter{AmenityIDs: []int64{0}}, "amenityIds[0]"},
		"non-positive city": {models.SearchFilter{CityID: ptr(int64(0))}, "cityId"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			n := tc.filter.Normalize()
			err := v.ValidateSearch(&n)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))

			var ve *errors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestValidateInput(t *testing.T) {
	v := NewPropertyValidator()

	valid := &models.PropertyInput{Title: "Villa", Type: models.TypeVilla, ListingType: models.ListingSale, Price: ptr(10.0)}
	require.NoError(t, v.ValidateInput(valid))

	missingTitle := *valid
	missingTitle.Title = ""
	assert.True(t, errors.IsInvalidInput(v.ValidateInput(&missingTitle)))

	orphanDistrict := *valid
	orphanDistrict.DistrictID = ptr(int64(4))
	assert.True(t, errors.IsInvalidInput(v.ValidateInput(&orphanDistrict)))

	negative := *valid
	negative.Rooms = ptr(-1)
	assert.True(t, errors.IsInvalidInput(v.ValidateInput(&negative)))
}

func TestValidateOrder(t *testing.T) {
	v := NewPropertyValidator()

	require.NoError(t, v.ValidateOrder([]models.PropertyOrder{{ID: 1, SortOrder: 0}, {ID: 2, SortOrder: 1}}))
	assert.Error(t, v.ValidateOrder(nil))
	assert.Error(t, v.ValidateOrder([]models.PropertyOrder{{ID: 1}, {ID: 1, SortOrder: 2}}))
	assert.Error(t, v.ValidateOrder([]models.PropertyOrder{{ID: 0}}))
}

func TestCatalogValidator(t *testing.T) {
	v := NewCatalogValidator()

	assert.NoError(t, v.ValidateKind(models.ReferenceAmenities))
	assert.True(t, errors.IsInvalidInput(v.ValidateKind("planets")))

	assert.NoError(t, v.ValidateCity(&models.City{Name: "Riyadh", NameAr: "الرياض"}))
	assert.Error(t, v.ValidateCity(&models.City{}))
	assert.Error(t, v.ValidateDistrict(&models.District{Name: "Olaya"}))
	assert.NoError(t, v.ValidateAmenity(&models.Amenity{Name: "Pool"}))

	assert.NoError(t, v.ValidateSettings(models.SiteSettings{"site_name": "Homes", "contact_phone": "+966"}))
	assert.Error(t, v.ValidateSettings(models.SiteSettings{}))
	assert.Error(t, v.ValidateSettings(models.SiteSettings{"": "x"}))
}
