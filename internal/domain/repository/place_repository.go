package repository

import (
	"context"

	"github.com/panoprobe/internal/domain"
)

// PlaceLookupRepository - обратное геокодирование точки.
// Ошибка означает недоступность сервиса, анализ без адреса не выполняется.
type PlaceLookupRepository interface {
	ReverseGeocode(ctx context.Context, coords domain.Coordinates) (*domain.PlaceLookup, error)
}
