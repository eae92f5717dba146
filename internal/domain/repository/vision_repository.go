package repository

import (
	"context"

	"github.com/panoprobe/internal/domain"
)

// VisionRepository - внешняя модель оценки изображения панорамы
type VisionRepository interface {
	// Analyze возвращает None, если модель недоступна или не смогла оценить точку
	Analyze(ctx context.Context, coords domain.Coordinates, numViews int) domain.Optional[domain.VisionRating]

	// Health проверяет готовность сервиса
	Health(ctx context.Context) bool
}
