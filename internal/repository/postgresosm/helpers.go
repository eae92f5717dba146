package postgresosm

import (
	"fmt"
	"strings"

	"github.com/panoprobe/internal/domain"
)

// nearbyRow - строка объединённой выборки по point/line/polygon таблицам
type nearbyRow struct {
	ElementType string `db:"element_type"`
	Name        string `db:"name"`
	Building    string `db:"building"`
	Highway     string `db:"highway"`
	Amenity     string `db:"amenity"`
	Tourism     string `db:"tourism"`
	Natural     string `db:"natural"`
}

func (r *nearbyRow) toDomain() domain.NearbyElement {
	tags := make(map[string]string, 2)
	setTag(tags, "name", r.Name)
	setTag(tags, "building", r.Building)
	setTag(tags, "highway", r.Highway)
	setTag(tags, "amenity", r.Amenity)
	setTag(tags, "tourism", r.Tourism)
	setTag(tags, "natural", r.Natural)

	return domain.NearbyElement{Type: r.ElementType, Tags: tags}
}

func setTag(tags map[string]string, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		tags[key] = v
	}
}

// withinExpr - фильтр по радиусу в метрах. Геометрия osm2pgsql хранится в 3857.
func withinExpr() string {
	return fmt.Sprintf("ST_DWithin(ST_Transform(way, %d)::geography, point.geom, $3)", SRID4326)
}

// buildNearbyQuery: $1 lon, $2 lat, $3 радиус, $4 amenity, $5 natural, $6 highway, $7 limit
func buildNearbyQuery() string {
	within := withinExpr()

	return fmt.Sprintf(`
		WITH point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), %[1]d)::geography AS geom
		)
		SELECT
			'node' AS element_type,
			COALESCE(name, '') AS name,
			COALESCE(building, '') AS building,
			'' AS highway,
			COALESCE(amenity, '') AS amenity,
			COALESCE(tourism, '') AS tourism,
			COALESCE("natural", '') AS "natural"
		FROM %[2]s, point
		WHERE (amenity = ANY($4) OR tourism IS NOT NULL OR "natural" = ANY($5))
		  AND %[5]s
		UNION ALL
		SELECT
			'way',
			COALESCE(name, ''),
			'',
			highway,
			'',
			'',
			''
		FROM %[3]s, point
		WHERE highway = ANY($6)
		  AND %[5]s
		UNION ALL
		SELECT
			'way',
			name,
			building,
			'',
			COALESCE(amenity, ''),
			COALESCE(tourism, ''),
			''
		FROM %[4]s, point
		WHERE building IS NOT NULL AND name IS NOT NULL AND name <> ''
		  AND %[5]s
		LIMIT $7
	`, SRID4326, planetPointTable, planetLineTable, planetPolygonTable, within)
}
