package services

import (
	"context"

	"realestate-listings/internal/models"
	"realestate-listings/internal/repositories"
	"realestate-listings/internal/validators"
	"realestate-listings/pkg/cache"
	"realestate-listings/pkg/logger"
)

// CatalogService handles admin writes to reference data and site settings.
type CatalogService struct {
	refs      repositories.ReferenceRepository
	settings  repositories.SettingsRepository
	cache     cache.Store
	validator validators.CatalogValidator
}

func NewCatalogService(
	refs repositories.ReferenceRepository,
	settings repositories.SettingsRepository,
	store cache.Store,
	validator validators.CatalogValidator,
) *CatalogService {
	return &CatalogService{
		refs:      refs,
		settings:  settings,
		cache:     store,
		validator: validator,
	}
}

func (s *CatalogService) SaveCity(ctx context.Context, city *models.City) error {
	if err := s.validator.ValidateCity(city); err != nil {
		return err
	}
	if err := s.refs.SaveCity(ctx, city); err != nil {
		return err
	}
	s.invalidate(ctx, models.ReferenceCities)
	return nil
}

func (s *CatalogService) SaveDistrict(ctx context.Context, district *models.District) error {
	if err := s.validator.ValidateDistrict(district); err != nil {
		return err
	}
	if err := s.refs.SaveDistrict(ctx, district); err != nil {
		return err
	}
	s.invalidate(ctx, models.ReferenceDistricts)
	return nil
}

func (s *CatalogService) SaveAmenity(ctx context.Context, amenity *models.Amenity) error {
	if err := s.validator.ValidateAmenity(amenity); err != nil {
		return err
	}
	if err := s.refs.SaveAmenity(ctx, amenity); err != nil {
		return err
	}
	s.invalidate(ctx, models.ReferenceAmenities)
	return nil
}

// DeleteReference removes one entry. Deleting a city also removes its
// districts, and deleting an amenity detaches it from listings, so those
// cache entries go too.
func (s *CatalogService) DeleteReference(ctx context.Context, kind models.ReferenceKind, id int64) error {
	if err := s.validator.ValidateKind(kind); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.refs.DeleteReference(ctx, kind, id); err != nil {
		return err
	}

	s.invalidate(ctx, kind)
	switch kind {
	case models.ReferenceCities:
		s.invalidate(ctx, models.ReferenceDistricts)
	case models.ReferenceAmenities:
		s.cache.InvalidatePrefix(cache.PropertiesNamespace)
	}
	return nil
}

func (s *CatalogService) SaveSettings(ctx context.Context, settings models.SiteSettings) error {
	if err := s.validator.ValidateSettings(settings); err != nil {
		return err
	}
	if err := s.settings.SaveSettings(ctx, settings); err != nil {
		return err
	}
	s.cache.InvalidateExact(cache.SiteSettingsKey())
	logger.Ctx(ctx).Info().Int("keys", len(settings)).Msg("site settings updated")
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, kind models.ReferenceKind) {
	key := cache.ReferenceKey(string(kind))
	if s.cache.InvalidateExact(key) {
		logger.Ctx(ctx).Debug().Str(logger.FieldCacheKey, key).Msg("reference cache invalidated")
	}
}
