package repositories

import (
	"context"

	"realestate-listings/internal/models"
)

// PropertyRepository reads and writes listings. Search and Count only see
// published listings and expect a normalized filter.
type PropertyRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Property, error)
	// FindAll returns every listing, drafts included, ordered by id.
	FindAll(ctx context.Context) ([]models.Property, error)
	Search(ctx context.Context, filter models.SearchFilter) ([]models.Property, error)
	Count(ctx context.Context, filter models.SearchFilter) (int64, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id int64) error
	Reorder(ctx context.Context, orders []models.PropertyOrder) error
}

// ReferenceRepository stores cities, districts and amenities. Save inserts
// when the id is zero and updates otherwise.
type ReferenceRepository interface {
	ListCities(ctx context.Context) ([]models.City, error)
	ListDistricts(ctx context.Context) ([]models.District, error)
	ListAmenities(ctx context.Context) ([]models.Amenity, error)
	SaveCity(ctx context.Context, city *models.City) error
	SaveDistrict(ctx context.Context, district *models.District) error
	SaveAmenity(ctx context.Context, amenity *models.Amenity) error
	DeleteReference(ctx context.Context, kind models.ReferenceKind, id int64) error
}

type SettingsRepository interface {
	GetSettings(ctx context.Context) (models.SiteSettings, error)
	SaveSettings(ctx context.Context, settings models.SiteSettings) error
}
