package cache

import (
	"fmt"

	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/pkg/utils"
)

const coordinateDecimals = 4

func coordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.4f:%.4f",
		utils.RoundCoordinate(c.Lat, coordinateDecimals),
		utils.RoundCoordinate(c.Lng, coordinateDecimals))
}

// PlaceKey - ключ ответа геокодера
func PlaceKey(c domain.Coordinates) string {
	return "place:" + coordKey(c)
}

// NearbyKey - ключ объектов окружения, радиус входит в ключ
func NearbyKey(c domain.Coordinates, radiusMeters int) string {
	return fmt.Sprintf("nearby:%d:%s", radiusMeters, coordKey(c))
}

// ImageryKey - ключ метаданных панорамы: по ID, если он известен
func ImageryKey(c domain.Coordinates, panoID string) string {
	if panoID != "" {
		return "imagery:pano:" + panoID
	}
	return "imagery:loc:" + coordKey(c)
}
