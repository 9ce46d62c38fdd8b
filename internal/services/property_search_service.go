package services

import (
	"context"

	"realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/repositories"
	"realestate-listings/internal/transformers"
	"realestate-listings/internal/utils"
	"realestate-listings/internal/validators"
	"realestate-listings/pkg/cache"
	"realestate-listings/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// PropertySearchService answers the public read paths. Every read goes
// through the cache; values handed out are shared with the cache and must
// not be modified by callers.
type PropertySearchService struct {
	repo      repositories.PropertyRepository
	refs      repositories.ReferenceRepository
	settings  repositories.SettingsRepository
	cache     cache.Store
	text      transformers.TextNormalizer
	validator validators.PropertyValidator
	catalog   validators.CatalogValidator
}

func NewPropertySearchService(
	repo repositories.PropertyRepository,
	refs repositories.ReferenceRepository,
	settings repositories.SettingsRepository,
	store cache.Store,
	text transformers.TextNormalizer,
	validator validators.PropertyValidator,
	catalog validators.CatalogValidator,
) *PropertySearchService {
	return &PropertySearchService{
		repo:      repo,
		refs:      refs,
		settings:  settings,
		cache:     store,
		text:      text,
		validator: validator,
		catalog:   catalog,
	}
}

// prepare normalizes and validates a filter. Nothing touches the cache or
// the data source before this succeeds.
func (s *PropertySearchService) prepare(filter models.SearchFilter) (models.SearchFilter, error) {
	f := filter.Normalize()
	if err := s.validator.ValidateSearch(&f); err != nil {
		return f, err
	}
	f.Query = s.text.Normalize(f.Query)
	return f, nil
}

// SearchProperties returns one page of published listings matching filter.
// Count and page are fetched in parallel; the count shares its cache entry
// with SearchPropertiesCount so both always report the same total.
func (s *PropertySearchService) SearchProperties(ctx context.Context, filter models.SearchFilter) (*models.SearchResult, error) {
	f, err := s.prepare(filter)
	if err != nil {
		return nil, err
	}

	var (
		total int64
		items []models.Property
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.count(gctx, f)
		return err
	})
	g.Go(func() error {
		if f.Unreachable() {
			items = []models.Property{}
			return nil
		}
		key := cache.PropertySearchKey(f.CanonicalKey())
		var err error
		items, err = cache.GetOrSetAs(gctx, s.cache, key, cache.TTLSearch, func(ctx context.Context) ([]models.Property, error) {
			return s.repo.Search(ctx, f)
		})
		if err != nil {
			logFetchError(ctx, err, "search", key)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.SearchResult{
		Items:      items,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: utils.TotalPages(total, f.Limit),
	}, nil
}

// SearchPropertiesCount returns only the number of matching listings.
func (s *PropertySearchService) SearchPropertiesCount(ctx context.Context, filter models.SearchFilter) (*models.CountResult, error) {
	f, err := s.prepare(filter)
	if err != nil {
		return nil, err
	}
	total, err := s.count(ctx, f)
	if err != nil {
		return nil, err
	}
	return &models.CountResult{Total: total}, nil
}

// The count entry outlives page entries (TTLCount vs TTLSearch), so after a
// missed invalidation the total may trail the items for up to TTLCount.
func (s *PropertySearchService) count(ctx context.Context, f models.SearchFilter) (int64, error) {
	key := cache.PropertyCountKey(f.CountKey())
	total, err := cache.GetOrSetAs(ctx, s.cache, key, cache.TTLCount, func(ctx context.Context) (int64, error) {
		return s.repo.Count(ctx, f)
	})
	if err != nil {
		logFetchError(ctx, err, "count", key)
	}
	return total, err
}

// GetProperty returns a published listing. Drafts are reported as missing.
func (s *PropertySearchService) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	if id <= 0 {
		return nil, errors.NewValidationError("id", "must be greater than 0")
	}

	key := cache.PropertyKey(id)
	property, err := cache.GetOrSetAs(ctx, s.cache, key, cache.TTLDetail, func(ctx context.Context) (*models.Property, error) {
		p, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !p.Published {
			return nil, errors.NotFound("property", id)
		}
		return p, nil
	})
	if err != nil {
		logFetchError(ctx, err, "get_property", key)
		return nil, err
	}
	return property, nil
}

// GetReferenceData returns the list named by kind.
func (s *PropertySearchService) GetReferenceData(ctx context.Context, kind models.ReferenceKind) (any, error) {
	if err := s.catalog.ValidateKind(kind); err != nil {
		return nil, err
	}
	switch kind {
	case models.ReferenceCities:
		return s.ListCities(ctx)
	case models.ReferenceDistricts:
		return s.ListDistricts(ctx)
	default:
		return s.ListAmenities(ctx)
	}
}

func (s *PropertySearchService) ListCities(ctx context.Context) ([]models.City, error) {
	return cachedReference(ctx, s.cache, models.ReferenceCities, s.refs.ListCities)
}

func (s *PropertySearchService) ListDistricts(ctx context.Context) ([]models.District, error) {
	return cachedReference(ctx, s.cache, models.ReferenceDistricts, s.refs.ListDistricts)
}

func (s *PropertySearchService) ListAmenities(ctx context.Context) ([]models.Amenity, error) {
	return cachedReference(ctx, s.cache, models.ReferenceAmenities, s.refs.ListAmenities)
}

func cachedReference[T any](ctx context.Context, store cache.Store, kind models.ReferenceKind, fetch func(context.Context) ([]T, error)) ([]T, error) {
	key := cache.ReferenceKey(string(kind))
	list, err := cache.GetOrSetAs(ctx, store, key, cache.TTLReference, fetch)
	if err != nil {
		logFetchError(ctx, err, "list_"+string(kind), key)
	}
	return list, err
}

func (s *PropertySearchService) GetSiteSettings(ctx context.Context) (models.SiteSettings, error) {
	key := cache.SiteSettingsKey()
	settings, err := cache.GetOrSetAs(ctx, s.cache, key, cache.TTLSettings, s.settings.GetSettings)
	if err != nil {
		logFetchError(ctx, err, "get_settings", key)
	}
	return settings, err
}

// InvalidateProperties drops every search, count and detail entry.
func (s *PropertySearchService) InvalidateProperties() int {
	return s.cache.InvalidatePrefix(cache.PropertiesNamespace)
}

func (s *PropertySearchService) InvalidateReference(kind models.ReferenceKind) bool {
	return s.cache.InvalidateExact(cache.ReferenceKey(string(kind)))
}

func (s *PropertySearchService) InvalidateSettings() bool {
	return s.cache.InvalidateExact(cache.SiteSettingsKey())
}

func (s *PropertySearchService) CacheStats() cache.Stats {
	return s.cache.Stats()
}

func (s *PropertySearchService) ClearCache() {
	s.cache.Clear()
}

// logFetchError records a failed data source fetch. Missing rows and
// cancelled callers are expected and not logged.
func logFetchError(ctx context.Context, err error, operation, key string) {
	if errors.IsNotFound(err) || ctx.Err() != nil {
		return
	}
	logger.Ctx(ctx).Error().Err(err).
		Str(logger.FieldOperation, operation).
		Str(logger.FieldCacheKey, key).
		Msg("cache fetch failed")
}
