package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/domain/repository"
	"github.com/panoprobe/internal/metrics"
	apperrors "github.com/panoprobe/internal/pkg/errors"
)

// Декораторы кешируют только ответы внешних сервисов.
// Ошибки кеша не влияют на результат: запрос уходит в исходный сервис.

type cachedPlaceRepository struct {
	next   repository.PlaceLookupRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedPlaceRepository оборачивает геокодер кешем. Ошибки геокодера не кешируются.
func NewCachedPlaceRepository(
	next repository.PlaceLookupRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) repository.PlaceLookupRepository {
	return &cachedPlaceRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *cachedPlaceRepository) ReverseGeocode(ctx context.Context, coords domain.Coordinates) (*domain.PlaceLookup, error) {
	cached, err := r.cache.GetPlace(ctx, coords)
	handleCacheError(ctx, r.cache, err, r.logger)
	if cached != nil {
		metrics.RecordCache("place", true)
		return cached, nil
	}
	metrics.RecordCache("place", false)

	place, err := r.next.ReverseGeocode(ctx, coords)
	if err != nil {
		return nil, err
	}

	if place != nil {
		handleCacheError(ctx, r.cache, r.cache.SetPlace(ctx, coords, place, r.ttl), r.logger)
	}
	return place, nil
}

type cachedNearbyRepository struct {
	next   repository.NearbyFeatureRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedNearbyRepository оборачивает источник объектов кешем.
// Пустой список не кешируется: он же возвращается при отказе Overpass.
func NewCachedNearbyRepository(
	next repository.NearbyFeatureRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) repository.NearbyFeatureRepository {
	return &cachedNearbyRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *cachedNearbyRepository) GetNearbyFeatures(ctx context.Context, coords domain.Coordinates, radiusMeters int) []domain.NearbyElement {
	cached, err := r.cache.GetNearby(ctx, coords, radiusMeters)
	handleCacheError(ctx, r.cache, err, r.logger)
	if len(cached) > 0 {
		metrics.RecordCache("nearby", true)
		return cached
	}
	metrics.RecordCache("nearby", false)

	elements := r.next.GetNearbyFeatures(ctx, coords, radiusMeters)
	if len(elements) > 0 {
		handleCacheError(ctx, r.cache, r.cache.SetNearby(ctx, coords, radiusMeters, elements, r.ttl), r.logger)
	}
	return elements
}

type cachedImageryRepository struct {
	next   repository.ImageryMetadataRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedImageryRepository кеширует только найденные панорамы
func NewCachedImageryRepository(
	next repository.ImageryMetadataRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) repository.ImageryMetadataRepository {
	return &cachedImageryRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *cachedImageryRepository) GetMetadata(ctx context.Context, coords domain.Coordinates, panoID string) domain.Optional[domain.ImageryMetadata] {
	return r.cached(ctx, coords, panoID, func() domain.Optional[domain.ImageryMetadata] {
		return r.next.GetMetadata(ctx, coords, panoID)
	})
}

func (r *cachedImageryRepository) ResolvePano(ctx context.Context, panoID string) domain.Optional[domain.ImageryMetadata] {
	md := r.cached(ctx, domain.Coordinates{}, panoID, func() domain.Optional[domain.ImageryMetadata] {
		return r.next.ResolvePano(ctx, panoID)
	})
	// запись по ID могла прийти от GetMetadata без координат
	if v, ok := md.Get(); ok && v.Location == nil {
		return r.next.ResolvePano(ctx, panoID)
	}
	return md
}

func (r *cachedImageryRepository) cached(
	ctx context.Context,
	coords domain.Coordinates,
	panoID string,
	fetch func() domain.Optional[domain.ImageryMetadata],
) domain.Optional[domain.ImageryMetadata] {
	cached, err := r.cache.GetImagery(ctx, coords, panoID)
	handleCacheError(ctx, r.cache, err, r.logger)
	if cached != nil {
		metrics.RecordCache("imagery", true)
		return domain.Some(*cached)
	}
	metrics.RecordCache("imagery", false)

	md := fetch()
	if v, ok := md.Get(); ok {
		handleCacheError(ctx, r.cache, r.cache.SetImagery(ctx, coords, panoID, v, r.ttl), r.logger)
	}
	return md
}

// handleCacheError логирует сбой кеша. Битая запись удаляется, чтобы следующий запрос её перезаписал.
func handleCacheError(ctx context.Context, cache repository.CacheRepository, err error, logger *zap.Logger) {
	if err == nil {
		return
	}

	appErr, ok := apperrors.As(err)
	if !ok || appErr.Code != apperrors.ErrCacheError.Code {
		logger.Warn("Cache unavailable, using upstream", zap.Error(err))
		return
	}

	key, _ := appErr.Details["key"].(string)
	logger.Warn("Dropping corrupted cache entry",
		zap.String("key", key),
		zap.Any("cause", appErr.Details["cause"]),
	)
	if key == "" {
		return
	}
	if err := cache.Delete(ctx, key); err != nil {
		logger.Warn("Failed to delete corrupted cache entry", zap.String("key", key), zap.Error(err))
	}
}
