package main

import (
	"context"
	"net/http"
	"time"

	"realestate-listings/internal/handlers"
	"realestate-listings/internal/middleware"
	"realestate-listings/internal/repositories"
	"realestate-listings/internal/services"
	"realestate-listings/internal/transformers"
	"realestate-listings/internal/utils"
	"realestate-listings/internal/validators"
	"realestate-listings/pkg/cache"
	"realestate-listings/pkg/config"
	"realestate-listings/pkg/database"
	"realestate-listings/pkg/logger"
	"realestate-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config      *config.Config
	Router      *gin.Engine
	Server      *http.Server
	RateLimiter *middleware.RateLimiter

	DB    *database.Database
	Cache *cache.Cache

	PropertyHandler *handlers.PropertyHandler
	CatalogHandler  *handlers.CatalogHandler
	AdminHandler    *handlers.AdminHandler
	HealthHandler   *handlers.HealthHandler

	propertyRepo  repositories.PropertyRepository
	referenceRepo repositories.ReferenceRepository
	settingsRepo  repositories.SettingsRepository
	memory        *repositories.MemoryStore

	// stops background goroutines owned by the app
	stop context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) (*App, error) {
	ctx, stop := context.WithCancel(context.Background())
	app := &App{Config: cfg, stop: stop}

	// Initialize infrastructure
	app.initializeMetrics()
	if err := app.initializeDatabase(ctx); err != nil {
		stop()
		return nil, err
	}
	app.initializeCache()
	app.initializeRateLimiter(ctx)

	// Initialize business logic
	if err := app.initializeDependencies(ctx); err != nil {
		app.cleanup()
		return nil, err
	}

	// Initialize web layer
	app.initializeRouter()
	return app, nil
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// open the configured data source
func (a *App) initializeDatabase(ctx context.Context) error {
	dbCfg := a.Config.Database
	if dbCfg.Driver == config.DriverMemory {
		a.memory = repositories.NewMemoryStore()
		a.propertyRepo, a.referenceRepo, a.settingsRepo = a.memory, a.memory, a.memory
		logger.L().Info().Msg("using in-memory data source")
		return nil
	}

	db, err := database.Open(ctx, database.Config{
		DSN:             dbCfg.DSN,
		MaxOpenConns:    dbCfg.MaxOpenConns,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	if dbCfg.MigrateOnStart {
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return err
		}
	}

	a.DB = db
	a.propertyRepo = repositories.NewPropertyRepository(db)
	a.referenceRepo = repositories.NewReferenceRepository(db)
	a.settingsRepo = repositories.NewSettingsRepository(db)
	return nil
}

// initialize the shared result cache
func (a *App) initializeCache() {
	opts := []cache.Option{
		cache.WithMaxSize(a.Config.Cache.MaxSize),
		cache.WithSweepInterval(a.Config.Cache.SweepInterval),
		cache.WithRecorder(metrics.CacheRecorder{}),
	}
	if a.Config.Cache.Coalesce {
		opts = append(opts, cache.WithCoalescing())
	}
	a.Cache = cache.New(opts...)
}

// initialize the rate limiter
func (a *App) initializeRateLimiter(ctx context.Context) {
	rl := a.Config.RateLimit
	a.RateLimiter = middleware.NewRateLimiter(middleware.PerMinute(rl.RequestsPerMinute), rl.Burst)
	go a.RateLimiter.Cleanup(ctx, time.Hour)
}

// initialize all dependencies
func (a *App) initializeDependencies(ctx context.Context) error {
	// transformers
	text := transformers.NewTextNormalizer()
	propTrans := transformers.NewPropertyTransformer(text)

	// validators
	propertyValidator := validators.NewPropertyValidator()
	catalogValidator := validators.NewCatalogValidator()

	// services
	searchService := services.NewPropertySearchService(
		a.propertyRepo, a.referenceRepo, a.settingsRepo, a.Cache, text, propertyValidator, catalogValidator)
	propertyService := services.NewPropertyService(a.propertyRepo, a.Cache, propTrans, propertyValidator)
	catalogService := services.NewCatalogService(a.referenceRepo, a.settingsRepo, a.Cache, catalogValidator)
	migrationService := services.NewPropertyMigrationService(a.propertyRepo, a.Cache, propTrans)

	if a.memory != nil && a.Config.Database.SeedFile != "" {
		if err := seed(ctx, a.Config.Database.SeedFile, propertyService, catalogService); err != nil {
			return err
		}
	}

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(searchService)
	a.CatalogHandler = handlers.NewCatalogHandler(searchService)
	a.AdminHandler = handlers.NewAdminHandler(propertyService, catalogService, searchService, migrationService)
	if a.DB != nil {
		a.HealthHandler = handlers.NewHealthHandler(a.DB)
	} else {
		a.HealthHandler = handlers.NewHealthHandler(nil)
	}
	return nil
}

// seed loads the seed file through the services so every row is validated
// and gets its search text.
func seed(ctx context.Context, path string, properties *services.PropertyService, catalog *services.CatalogService) error {
	data, err := utils.ReadSeedData(path)
	if err != nil {
		return err
	}

	for i := range data.Cities {
		if err := catalog.SaveCity(ctx, &data.Cities[i]); err != nil {
			return utils.WrapError(err, "seed city %d", i)
		}
	}
	for i := range data.Districts {
		if err := catalog.SaveDistrict(ctx, &data.Districts[i]); err != nil {
			return utils.WrapError(err, "seed district %d", i)
		}
	}
	for i := range data.Amenities {
		if err := catalog.SaveAmenity(ctx, &data.Amenities[i]); err != nil {
			return utils.WrapError(err, "seed amenity %d", i)
		}
	}
	for i := range data.Properties {
		if _, err := properties.CreateProperty(ctx, &data.Properties[i]); err != nil {
			return utils.WrapError(err, "seed property %d", i)
		}
	}
	if len(data.Settings) > 0 {
		if err := catalog.SaveSettings(ctx, data.Settings); err != nil {
			return utils.WrapError(err, "seed settings")
		}
	}

	logger.L().Info().
		Str("path", path).
		Int("properties", len(data.Properties)).
		Int("reference_rows", len(data.Cities)+len(data.Districts)+len(data.Amenities)).
		Msg("seed data loaded")
	return nil
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	gin.SetMode(a.Config.Server.Mode)
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.stop != nil {
		a.stop()
	}
	if a.Cache != nil {
		a.Cache.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}
