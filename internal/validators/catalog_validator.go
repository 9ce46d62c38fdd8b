package validators

import (
	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"

	"github.com/go-playground/validator/v10"
)

type catalogValidator struct {
	validate *validator.Validate
}

func NewCatalogValidator() CatalogValidator {
	return &catalogValidator{validate: newValidate()}
}

func (v *catalogValidator) ValidateKind(kind models.ReferenceKind) error {
	if !kind.Valid() {
		return errors.NewValidationError("kind", "must be cities, districts or amenities")
	}
	return nil
}

func (v *catalogValidator) ValidateCity(city *models.City) error {
	return toValidationError(v.validate.Struct(city))
}

func (v *catalogValidator) ValidateDistrict(district *models.District) error {
	return toValidationError(v.validate.Struct(district))
}

func (v *catalogValidator) ValidateAmenity(amenity *models.Amenity) error {
	return toValidationError(v.validate.Struct(amenity))
}

func (v *catalogValidator) ValidateSettings(settings models.SiteSettings) error {
	if len(settings) == 0 {
		return errors.NewValidationError("settings", "is required")
	}
	for key, value := range settings {
		if err := v.validate.Var(key, "required,max=128,printascii"); err != nil {
			return errors.NewValidationError("settings", "keys must be 1 to 128 printable characters")
		}
		if err := v.validate.Var(value, "max=10000"); err != nil {
			return errors.NewValidationError(key, "must be at most 10000 long")
		}
	}
	return nil
}
