package models

import "time"

type PropertyType string

const (
	TypeApartment PropertyType = "apartment"
	TypeVilla     PropertyType = "villa"
	TypeHouse     PropertyType = "house"
	TypeLand      PropertyType = "land"
	TypeOffice    PropertyType = "office"
	TypeShop      PropertyType = "shop"
	TypeChalet    PropertyType = "chalet"
)

var PropertyTypes = []PropertyType{
	TypeApartment, TypeVilla, TypeHouse, TypeLand, TypeOffice, TypeShop, TypeChalet,
}

func (t PropertyType) Valid() bool {
	for _, v := range PropertyTypes {
		if t == v {
			return true
		}
	}
	return false
}

type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"
)

func (t ListingType) Valid() bool {
	return t == ListingSale || t == ListingRent
}

// Property is one listing. Nullable numeric columns are pointers so that
// "unknown" is distinct from zero.
type Property struct {
	ID          int64        `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description" db:"description"`
	Address     string       `json:"address" db:"address"`
	Type        PropertyType `json:"type" db:"type"`
	ListingType ListingType  `json:"listingType" db:"listing_type"`
	Price       *float64     `json:"price" db:"price"`
	Rooms       *int         `json:"rooms" db:"rooms"`
	Bathrooms   *int         `json:"bathrooms" db:"bathrooms"`
	Area        *float64     `json:"area" db:"area"`
	CityID      *int64       `json:"cityId" db:"city_id"`
	DistrictID  *int64       `json:"districtId" db:"district_id"`
	AmenityIDs  []int64      `json:"amenityIds" db:"-"`
	SortOrder   int          `json:"sortOrder" db:"sort_order"`
	Published   bool         `json:"published" db:"published"`
	SearchText  string       `json:"-" db:"search_text"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}

// HasAmenity reports whether the listing offers amenity id.
func (p *Property) HasAmenity(id int64) bool {
	for _, a := range p.AmenityIDs {
		if a == id {
			return true
		}
	}
	return false
}

// PropertyInput is the body accepted by the admin create and update endpoints.
type PropertyInput struct {
	Title       string       `json:"title" validate:"required,max=255"`
	Description string       `json:"description" validate:"max=20000"`
	Address     string       `json:"address" validate:"max=512"`
	Type        PropertyType `json:"type" validate:"required,property_type"`
	ListingType ListingType  `json:"listingType" validate:"required,listing_type"`
	Price       *float64     `json:"price" validate:"omitempty,gte=0"`
	Rooms       *int         `json:"rooms" validate:"omitempty,gte=0"`
	Bathrooms   *int         `json:"bathrooms" validate:"omitempty,gte=0"`
	Area        *float64     `json:"area" validate:"omitempty,gte=0"`
	CityID      *int64       `json:"cityId" validate:"omitempty,gt=0"`
	DistrictID  *int64       `json:"districtId" validate:"omitempty,gt=0"`
	AmenityIDs  []int64      `json:"amenityIds" validate:"omitempty,dive,gt=0"`
	Published   *bool        `json:"published"`
}

// PropertyOrder sets the position of a listing in the featured ordering.
type PropertyOrder struct {
	ID        int64 `json:"id" validate:"required,gt=0"`
	SortOrder int   `json:"sortOrder" validate:"gte=0"`
}

type PaginationMeta struct {
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
	Next       *string `json:"next,omitempty"`
	Prev       *string `json:"prev,omitempty"`
}
