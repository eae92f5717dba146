package repository

import (
	"context"

	"github.com/panoprobe/internal/domain"
)

// NearbyFeatureRepository - объекты OSM в радиусе от точки.
// При недоступности источника возвращается пустой список, ошибки не пробрасываются.
type NearbyFeatureRepository interface {
	GetNearbyFeatures(ctx context.Context, coords domain.Coordinates, radiusMeters int) []domain.NearbyElement
}
