package validators

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"

	"github.com/go-playground/validator/v10"
)

// newValidate builds a validator that reports JSON field names and knows
// the listing enums.
func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("property_type", func(fl validator.FieldLevel) bool {
		return models.PropertyType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("listing_type", func(fl validator.FieldLevel) bool {
		return models.ListingType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("sort_mode", func(fl validator.FieldLevel) bool {
		return models.SortMode(fl.Field().String()).Valid()
	})
	return v
}

// toValidationError turns the first validator failure into a
// ValidationError so callers can match errors.ErrInvalidInput.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}

	fe := fieldErrs[0]
	return errors.NewValidationError(fieldName(fe), reason(fe))
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " long"
	case "property_type":
		return fmt.Sprintf("must be one of %v", models.PropertyTypes)
	case "listing_type":
		return "must be sale or rent"
	case "sort_mode":
		return "must be one of newest, oldest, price_asc, price_desc, featured"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
