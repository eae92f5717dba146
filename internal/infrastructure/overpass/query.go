package overpass

import (
	"fmt"
	"strconv"

	"github.com/panoprobe/internal/domain"
)

// BuildQuery формирует запрос объектов вокруг точки: именованные здания,
// крупные дороги, ключевые amenity, туристические объекты и природные ориентиры
func BuildQuery(coords domain.Coordinates, radiusMeters int) string {
	around := fmt.Sprintf("(around:%d,%s,%s)",
		radiusMeters,
		strconv.FormatFloat(coords.Lat, 'f', -1, 64),
		strconv.FormatFloat(coords.Lng, 'f', -1, 64),
	)

	return fmt.Sprintf(`[out:json][timeout:20];
(
  way["name"]["building"]%[1]s;
  way["highway"~"^(motorway|trunk|primary|secondary)$"]%[1]s;
  node["amenity"~"^(restaurant|cafe|shop|bank|hospital)$"]%[1]s;
  node["tourism"]%[1]s;
  node["natural"~"^(peak|volcano|beach|cliff|water)$"]%[1]s;
);
out body;`, around)
}
