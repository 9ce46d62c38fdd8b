package services

import (
	"context"
	"time"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/repositories"
	"realestate-listings/internal/transformers"
	"realestate-listings/internal/validators"
	"realestate-listings/pkg/cache"
	"realestate-listings/pkg/logger"
)

// PropertyService handles admin writes to listings. Every successful write
// drops all property-derived cache entries.
type PropertyService struct {
	repo      repositories.PropertyRepository
	cache     cache.Store
	trans     transformers.PropertyTransformer
	validator validators.PropertyValidator
	now       func() time.Time
}

func NewPropertyService(
	repo repositories.PropertyRepository,
	store cache.Store,
	trans transformers.PropertyTransformer,
	validator validators.PropertyValidator,
) *PropertyService {
	return &PropertyService{
		repo:      repo,
		cache:     store,
		trans:     trans,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateProperty stores a new listing. Listings are published unless the
// input says otherwise.
func (s *PropertyService) CreateProperty(ctx context.Context, input *models.PropertyInput) (*models.Property, error) {
	if err := s.validator.ValidateInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	property := &models.Property{Published: true, CreatedAt: now, UpdatedAt: now}
	s.trans.ApplyInput(input, property)
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}

	s.invalidate(ctx, "create", property.ID)
	return property, nil
}

// GetProperty returns a listing for editing, drafts included. It bypasses
// the cache.
func (s *PropertyService) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id int64, input *models.PropertyInput) (*models.Property, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateInput(input); err != nil {
		return nil, err
	}

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.trans.ApplyInput(input, property)
	property.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}

	s.invalidate(ctx, "update", id)
	return property, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "delete", id)
	return nil
}

// ReorderProperties sets the featured sort order of several listings at once.
func (s *PropertyService) ReorderProperties(ctx context.Context, orders []models.PropertyOrder) error {
	if err := s.validator.ValidateOrder(orders); err != nil {
		return err
	}
	if err := s.repo.Reorder(ctx, orders); err != nil {
		return err
	}
	s.invalidate(ctx, "reorder", 0)
	return nil
}

func (s *PropertyService) invalidate(ctx context.Context, operation string, id int64) {
	n := s.cache.InvalidatePrefix(cache.PropertiesNamespace)
	event := logger.Ctx(ctx).Info().Str(logger.FieldOperation, operation).Int("invalidated", n)
	if id != 0 {
		event = event.Int64(logger.FieldPropertyID, id)
	}
	event.Msg("property cache invalidated")
}

func validateID(id int64) error {
	if id <= 0 {
		return errors.NewValidationError("id", "must be greater than 0")
	}
	return nil
}
