package repository

import (
	"context"

	"github.com/panoprobe/internal/domain"
)

// ImageryMetadataRepository - метаданные панорамы
type ImageryMetadataRepository interface {
	// GetMetadata ищет панораму по panoID, а при пустом panoID - по координатам.
	// None, если ключ не настроен, панорама не найдена или сервис недоступен.
	GetMetadata(ctx context.Context, coords domain.Coordinates, panoID string) domain.Optional[domain.ImageryMetadata]

	// ResolvePano возвращает метаданные с координатами панорамы по её ID
	ResolvePano(ctx context.Context, panoID string) domain.Optional[domain.ImageryMetadata]
}
