package validators

import (
	"realestate-listings/internal/models"
)

type PropertyValidator interface {
	ValidateSearch(filter *models.SearchFilter) error
	ValidateInput(input *models.PropertyInput) error
	ValidateOrder(orders []models.PropertyOrder) error
}

type CatalogValidator interface {
	ValidateKind(kind models.ReferenceKind) error
	ValidateCity(city *models.City) error
	ValidateDistrict(district *models.District) error
	ValidateAmenity(amenity *models.Amenity) error
	ValidateSettings(settings models.SiteSettings) error
}
