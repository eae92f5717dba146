package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/domain/repository"
	apperrors "github.com/panoprobe/internal/pkg/errors"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	r.logger.Debug("Cached collaborator response", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("cache exists %s: %w", key, err)
	}
	return val > 0, nil
}

// GetPlace получает ответ геокодера из кеша
func (r *cacheRepository) GetPlace(ctx context.Context, coords domain.Coordinates) (*domain.PlaceLookup, error) {
	var place domain.PlaceLookup
	ok, err := r.getJSON(ctx, PlaceKey(coords), &place)
	if !ok {
		return nil, err
	}
	return &place, nil
}

func (r *cacheRepository) SetPlace(ctx context.Context, coords domain.Coordinates, place *domain.PlaceLookup, ttl time.Duration) error {
	return r.setJSON(ctx, PlaceKey(coords), place, ttl)
}

// GetNearby получает объекты окружения. nil означает промах, пустые списки не кешируются.
func (r *cacheRepository) GetNearby(ctx context.Context, coords domain.Coordinates, radiusMeters int) ([]domain.NearbyElement, error) {
	var elements []domain.NearbyElement
	ok, err := r.getJSON(ctx, NearbyKey(coords, radiusMeters), &elements)
	if !ok {
		return nil, err
	}
	return elements, nil
}

func (r *cacheRepository) SetNearby(
	ctx context.Context,
	coords domain.Coordinates,
	radiusMeters int,
	elements []domain.NearbyElement,
	ttl time.Duration,
) error {
	return r.setJSON(ctx, NearbyKey(coords, radiusMeters), elements, ttl)
}

// GetImagery получает метаданные панорамы. При известном panoID ключ не зависит от координат.
func (r *cacheRepository) GetImagery(ctx context.Context, coords domain.Coordinates, panoID string) (*domain.ImageryMetadata, error) {
	var md domain.ImageryMetadata
	ok, err := r.getJSON(ctx, ImageryKey(coords, panoID), &md)
	if !ok {
		return nil, err
	}
	return &md, nil
}

func (r *cacheRepository) SetImagery(
	ctx context.Context,
	coords domain.Coordinates,
	panoID string,
	md domain.ImageryMetadata,
	ttl time.Duration,
) error {
	return r.setJSON(ctx, ImageryKey(coords, panoID), md, ttl)
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil || data == nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, decodeError(key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return decodeError(key, err)
	}
	return r.Set(ctx, key, data, ttl)
}

// decodeError - битая или несериализуемая запись кеша
func decodeError(key string, cause error) error {
	return apperrors.ErrCacheError.WithDetails(map[string]interface{}{
		"key":   key,
		"cause": cause.Error(),
	})
}
