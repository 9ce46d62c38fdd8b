package services

import (
	"context"

	"realestate-listings/internal/repositories"
	"realestate-listings/internal/transformers"
	"realestate-listings/pkg/cache"
	"realestate-listings/pkg/logger"
)

// PropertyMigrationService rewrites stored listings after the text
// normalization rules change.
type PropertyMigrationService struct {
	repo  repositories.PropertyRepository
	cache cache.Store
	trans transformers.PropertyTransformer
}

func NewPropertyMigrationService(
	repo repositories.PropertyRepository,
	store cache.Store,
	trans transformers.PropertyTransformer,
) *PropertyMigrationService {
	return &PropertyMigrationService{
		repo:  repo,
		cache: store,
		trans: trans,
	}
}

// RebuildSearchText recomputes the search text of every listing and returns
// how many rows changed. Listings that fail to update are logged and
// skipped.
func (s *PropertyMigrationService) RebuildSearchText(ctx context.Context) (int, error) {
	properties, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range properties {
		property := &properties[i]
		text := s.trans.BuildSearchText(property)
		if text == property.SearchText {
			continue
		}
		property.SearchText = text
		if err := s.repo.Update(ctx, property); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Int64(logger.FieldPropertyID, property.ID).Msg("search text not rebuilt")
			continue
		}
		updated++
	}

	if updated > 0 {
		s.cache.InvalidatePrefix(cache.PropertiesNamespace)
	}
	logger.Ctx(ctx).Info().Int("updated", updated).Int("total", len(properties)).Msg("search text rebuilt")
	return updated, nil
}
