package models

import (
	"cmp"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortOldest    SortMode = "oldest"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortFeatured  SortMode = "featured"
)

func (s SortMode) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortFeatured:
		return true
	}
	return false
}

const (
	DefaultLimit = 12
	MaxLimit     = 50
)

// SearchFilter describes a property search. Nil pointers and empty strings
// mean "no constraint". Treat values as immutable: Normalize returns a copy.
type SearchFilter struct {
	Type         PropertyType `json:"type,omitempty" validate:"omitempty,property_type"`
	ListingType  ListingType  `json:"listingType,omitempty" validate:"omitempty,listing_type"`
	MinPrice     *float64     `json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice     *float64     `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	MinRooms     *int         `json:"minRooms,omitempty" validate:"omitempty,gte=0"`
	MinBathrooms *int         `json:"minBathrooms,omitempty" validate:"omitempty,gte=0"`
	Query        string       `json:"q,omitempty" validate:"max=200"`
	AmenityIDs   []int64      `json:"amenityIds,omitempty" validate:"omitempty,max=50,dive,gt=0"`
	CityID       *int64       `json:"cityId,omitempty" validate:"omitempty,gt=0"`
	DistrictID   *int64       `json:"districtId,omitempty" validate:"omitempty,gt=0"`
	Sort         SortMode     `json:"sort,omitempty" validate:"omitempty,sort_mode"`
	Page         int          `json:"page,omitempty" validate:"gte=1"`
	Limit        int          `json:"limit,omitempty" validate:"gte=1,lte=50"`
}

// Normalize returns a copy with defaults resolved and the amenity set sorted
// and de-duplicated. Page and Limit are only defaulted when zero so that
// validation still sees out-of-range values.
func (f SearchFilter) Normalize() SearchFilter {
	out := f
	if out.Sort == "" {
		out.Sort = SortNewest
	}
	if out.Page == 0 {
		out.Page = 1
	}
	if out.Limit == 0 {
		out.Limit = DefaultLimit
	}
	if len(f.AmenityIDs) > 0 {
		ids := slices.Clone(f.AmenityIDs)
		slices.Sort(ids)
		out.AmenityIDs = slices.Compact(ids)
	} else {
		out.AmenityIDs = nil
	}
	out.Query = strings.Join(strings.Fields(f.Query), " ")
	return out
}

// Unreachable reports whether the page starts beyond any addressable row,
// where (Page-1)*Limit would overflow an int.
func (f SearchFilter) Unreachable() bool {
	return f.Page > 1 && f.Limit > 0 && f.Page-1 > math.MaxInt/f.Limit
}

// Offset is the number of rows before the requested page. It saturates at
// math.MaxInt instead of overflowing.
func (f SearchFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	if f.Unreachable() {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

// Tokens splits the query into the terms that must all match.
func (f SearchFilter) Tokens() []string {
	return strings.Fields(f.Query)
}

// Values encodes the page-independent part of the filter.
func (f SearchFilter) Values() url.Values {
	v := url.Values{}
	if f.Type != "" {
		v.Set("type", string(f.Type))
	}
	if f.ListingType != "" {
		v.Set("listing_type", string(f.ListingType))
	}
	if f.MinPrice != nil {
		v.Set("price_min", formatFloat(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		v.Set("price_max", formatFloat(*f.MaxPrice))
	}
	if f.MinRooms != nil {
		v.Set("rooms_min", strconv.Itoa(*f.MinRooms))
	}
	if f.MinBathrooms != nil {
		v.Set("bathrooms_min", strconv.Itoa(*f.MinBathrooms))
	}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if len(f.AmenityIDs) > 0 {
		ids := slices.Clone(f.AmenityIDs)
		slices.Sort(ids)
		ids = slices.Compact(ids)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.FormatInt(id, 10)
		}
		v.Set("amenities", strings.Join(parts, ","))
	}
	if f.CityID != nil {
		v.Set("city", strconv.FormatInt(*f.CityID, 10))
	}
	if f.DistrictID != nil {
		v.Set("district", strconv.FormatInt(*f.DistrictID, 10))
	}
	return v
}

// CountKey is the canonical encoding used for count queries. Sort and
// pagination do not change the total.
func (f SearchFilter) CountKey() string {
	return f.Values().Encode()
}

// CanonicalKey is a deterministic encoding of every field. url.Values.Encode
// sorts by field name, so construction order never matters.
func (f SearchFilter) CanonicalKey() string {
	v := f.Values()
	if f.Sort != "" {
		v.Set("sort", string(f.Sort))
	}
	if f.Page != 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit != 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v.Encode()
}

// Matches reports whether p satisfies every constraint. Only published
// listings match. Query terms are compared against p.SearchText, so both
// must be in normalized form.
func (f SearchFilter) Matches(p *Property) bool {
	if !p.Published {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.ListingType != "" && p.ListingType != f.ListingType {
		return false
	}
	if f.MinPrice != nil && (p.Price == nil || *p.Price < *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && (p.Price == nil || *p.Price > *f.MaxPrice) {
		return false
	}
	if f.MinRooms != nil && (p.Rooms == nil || *p.Rooms < *f.MinRooms) {
		return false
	}
	if f.MinBathrooms != nil && (p.Bathrooms == nil || *p.Bathrooms < *f.MinBathrooms) {
		return false
	}
	if f.CityID != nil && (p.CityID == nil || *p.CityID != *f.CityID) {
		return false
	}
	if f.DistrictID != nil && (p.DistrictID == nil || *p.DistrictID != *f.DistrictID) {
		return false
	}
	for _, id := range f.AmenityIDs {
		if !p.HasAmenity(id) {
			return false
		}
	}
	for _, tok := range f.Tokens() {
		if !strings.Contains(p.SearchText, tok) {
			return false
		}
	}
	return true
}

// Compare orders two listings by the filter's sort mode, breaking ties by
// id ascending. Listings without a price sort last in both price modes.
func (f SearchFilter) Compare(a, b *Property) int {
	var c int
	switch f.Sort {
	case SortOldest:
		c = a.CreatedAt.Compare(b.CreatedAt)
	case SortPriceAsc:
		c = comparePrice(a.Price, b.Price, false)
	case SortPriceDesc:
		c = comparePrice(a.Price, b.Price, true)
	case SortFeatured:
		c = cmp.Compare(a.SortOrder, b.SortOrder)
	default:
		c = b.CreatedAt.Compare(a.CreatedAt)
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func comparePrice(a, b *float64, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case desc:
		return cmp.Compare(*b, *a)
	default:
		return cmp.Compare(*a, *b)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
