package repository

import (
	"context"
	"time"

	"github.com/panoprobe/internal/domain"
)

// CacheRepository определяет методы для работы с кешем.
// Промах кеша возвращается как (nil, nil).
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetPlace / SetPlace - ответ геокодера для точки
	GetPlace(ctx context.Context, coords domain.Coordinates) (*domain.PlaceLookup, error)
	SetPlace(ctx context.Context, coords domain.Coordinates, place *domain.PlaceLookup, ttl time.Duration) error

	// GetNearby / SetNearby - объекты окружения в радиусе
	GetNearby(ctx context.Context, coords domain.Coordinates, radiusMeters int) ([]domain.NearbyElement, error)
	SetNearby(ctx context.Context, coords domain.Coordinates, radiusMeters int, elements []domain.NearbyElement, ttl time.Duration) error

	// GetImagery / SetImagery - метаданные панорамы по ID или по точке
	GetImagery(ctx context.Context, coords domain.Coordinates, panoID string) (*domain.ImageryMetadata, error)
	SetImagery(ctx context.Context, coords domain.Coordinates, panoID string, md domain.ImageryMetadata, ttl time.Duration) error
}
