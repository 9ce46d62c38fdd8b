package validators

import (
	"fmt"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"

	"github.com/go-playground/validator/v10"
)

type propertyValidator struct {
	validate *validator.Validate
}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{validate: newValidate()}
}

// ValidateSearch expects a normalized filter, so Page and Limit are already
// defaulted when they were left at zero.
func (v *propertyValidator) ValidateSearch(filter *models.SearchFilter) error {
	return toValidationError(v.validate.Struct(filter))
}

func (v *propertyValidator) ValidateInput(input *models.PropertyInput) error {
	if err := toValidationError(v.validate.Struct(input)); err != nil {
		return err
	}
	if input.DistrictID != nil && input.CityID == nil {
		return errors.NewValidationError("districtId", "requires cityId")
	}
	return nil
}

func (v *propertyValidator) ValidateOrder(orders []models.PropertyOrder) error {
	if len(orders) == 0 {
		return errors.NewValidationError("orders", "is required")
	}
	seen := make(map[int64]struct{}, len(orders))
	for i := range orders {
		if err := toValidationError(v.validate.Struct(&orders[i])); err != nil {
			return err
		}
		if _, dup := seen[orders[i].ID]; dup {
			return errors.NewValidationError("orders", fmt.Sprintf("property %d listed twice", orders[i].ID))
		}
		seen[orders[i].ID] = struct{}{}
	}
	return nil
}
