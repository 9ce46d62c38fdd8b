package models

// ReferenceKind names a reference data list.
type ReferenceKind string

const (
	ReferenceCities    ReferenceKind = "cities"
	ReferenceDistricts ReferenceKind = "districts"
	ReferenceAmenities ReferenceKind = "amenities"
)

func (k ReferenceKind) Valid() bool {
	switch k {
	case ReferenceCities, ReferenceDistricts, ReferenceAmenities:
		return true
	}
	return false
}

type City struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name" validate:"required,max=128"`
	NameAr string `json:"nameAr" db:"name_ar" validate:"max=128"`
}

type District struct {
	ID     int64  `json:"id" db:"id"`
	CityID int64  `json:"cityId" db:"city_id" validate:"required,gt=0"`
	Name   string `json:"name" db:"name" validate:"required,max=128"`
	NameAr string `json:"nameAr" db:"name_ar" validate:"max=128"`
}

type Amenity struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name" validate:"required,max=128"`
	NameAr string `json:"nameAr" db:"name_ar" validate:"max=128"`
}
