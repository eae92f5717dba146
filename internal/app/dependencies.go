package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/panoprobe/internal/config"
	"github.com/panoprobe/internal/domain/repository"
	"github.com/panoprobe/internal/infrastructure/nominatim"
	"github.com/panoprobe/internal/infrastructure/overpass"
	"github.com/panoprobe/internal/infrastructure/streetview"
	"github.com/panoprobe/internal/infrastructure/vision"
	"github.com/panoprobe/internal/repository/cache"
	"github.com/panoprobe/internal/repository/postgresosm"
	"github.com/panoprobe/internal/usecase"
)

// Dependencies - собранные коллабораторы и use case анализа
type Dependencies struct {
	Analysis *usecase.AnalysisUseCase
	// Redis равен nil, если кеш выключен и Redis не требуется
	Redis *cache.Redis

	closers []func() error
	logger  *zap.Logger
}

// Build собирает зависимости анализа по конфигурации.
// requireRedis нужен воркеру: без Redis Streams он работать не может.
// API при недоступном Redis продолжает работу без кеша.
func Build(cfg *config.Config, logger *zap.Logger, requireRedis bool) (*Dependencies, error) {
	deps := &Dependencies{logger: logger}

	placeRepo := nominatim.NewClient(&cfg.Nominatim, logger)
	imageryRepo := streetview.NewClient(&cfg.Imagery, logger)

	var nearbyRepo repository.NearbyFeatureRepository
	switch cfg.Features.Source {
	case config.FeaturesSourcePostgres:
		osmDB, err := postgresosm.New(&cfg.OSMDB, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to OSM PostgreSQL: %w", err)
		}
		deps.closers = append(deps.closers, osmDB.Close)
		nearbyRepo = postgresosm.NewNearbyRepository(osmDB)
	default:
		nearbyRepo = overpass.NewClient(&cfg.Overpass, logger)
	}
	logger.Info("Nearby features source selected", zap.String("source", cfg.Features.Source))

	var visionRepo repository.VisionRepository
	if cfg.Vision.Enabled {
		visionRepo = vision.NewClient(&cfg.Vision, logger)
	}

	if cfg.Redis.Enabled || requireRedis {
		redisClient, err := cache.NewRedis(&cfg.Redis, logger)
		switch {
		case err != nil && requireRedis:
			deps.Close()
			return nil, err
		case err != nil:
			logger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		default:
			deps.Redis = redisClient
			deps.closers = append(deps.closers, redisClient.Close)
		}
	}

	if cfg.Redis.Enabled && deps.Redis != nil {
		cacheRepo := cache.NewCacheRepository(deps.Redis)
		placeRepo = cache.NewCachedPlaceRepository(placeRepo, cacheRepo, cfg.Cache.PlaceTTL, logger)
		nearbyRepo = cache.NewCachedNearbyRepository(nearbyRepo, cacheRepo, cfg.Cache.NearbyTTL, logger)
		imageryRepo = cache.NewCachedImageryRepository(imageryRepo, cacheRepo, cfg.Cache.ImageryTTL, logger)
		logger.Info("Collaborator cache enabled")
	}

	deps.Analysis = usecase.NewAnalysisUseCase(
		placeRepo,
		nearbyRepo,
		imageryRepo,
		visionRepo,
		usecase.AnalysisSettings{
			RadiusMeters:  cfg.Overpass.RadiusMeters,
			VisionEnabled: cfg.Vision.Enabled,
			NumViews:      cfg.Vision.NumViews,
		},
		logger,
	)

	return deps, nil
}

// Close освобождает соединения в обратном порядке
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			d.logger.Error("Failed to close resource", zap.Error(err))
		}
	}
	d.closers = nil
}
