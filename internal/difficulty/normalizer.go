package difficulty

import (
	"strings"

	"github.com/panoprobe/internal/domain"
)

// OSM теги, по которым классифицируются объекты рядом с точкой
const (
	tagBuilding = "building"
	tagHighway  = "highway"
	tagAmenity  = "amenity"
	tagTourism  = "tourism"
	tagNatural  = "natural"
	tagName     = "name"
)

// Normalize собирает каноническую запись признаков из трёх независимых
// источников. Отсутствующие и частичные данные заменяются значениями
// по умолчанию, функция никогда не завершается ошибкой.
func Normalize(
	coords domain.Coordinates,
	panoID string,
	place domain.PlaceLookup,
	nearby []domain.NearbyElement,
	imagery domain.Optional[domain.ImageryMetadata],
) domain.LocationFeatures {
	addr := place.Address
	counts := countNearby(nearby)

	features := domain.LocationFeatures{
		Lat: coords.Lat,
		Lng: coords.Lng,

		Country:     firstNonEmpty(addr.Country, UnknownCountry),
		CountryCode: strings.ToUpper(firstNonEmpty(addr.CountryCode, UnknownCountryCode)),
		City:        optionalString(firstNonEmpty(addr.City, addr.Town)),
		State:       optionalString(addr.State),
		PlaceType:   determinePlaceType(addr),

		NearbyBuildingsCount: counts.buildings,
		NearbyRoadsCount:     counts.roads,
		NearbyPOIsCount:      counts.pois,
		NaturalFeaturesCount: counts.natural,
		HasNamedLandmarks:    counts.namedLandmarks > 0,

		PopulationDensity: estimatePopulationDensity(addr),
		UrbanScore:        urbanScoreFromCount(counts.buildings + counts.roads + counts.amenities),
	}

	if md, ok := imagery.Get(); ok {
		features.ImageDate = optionalString(md.Date)
		features.Copyright = optionalString(md.Copyright)
		features.IsTrekkerImagery = md.Copyright != "" && !strings.Contains(md.Copyright, PrimaryImageryProvider)
		if panoID == "" {
			panoID = md.PanoID
		}
	}
	features.PanoID = optionalString(panoID)

	return features
}

// determinePlaceType - приоритет city > town > village > hamlet > isolated
func determinePlaceType(addr domain.PlaceAddress) domain.PlaceType {
	switch {
	case addr.City != "":
		return domain.PlaceTypeCity
	case addr.Town != "":
		return domain.PlaceTypeTown
	case addr.Village != "":
		return domain.PlaceTypeVillage
	case addr.Hamlet != "":
		return domain.PlaceTypeHamlet
	default:
		return domain.PlaceTypeIsolated
	}
}

// estimatePopulationDensity - грубая оценка плотности населения 0..3.
// hamlet и отсутствие данных одинаково дают 0.
func estimatePopulationDensity(addr domain.PlaceAddress) int {
	switch {
	case addr.City != "":
		return 3
	case addr.Town != "":
		return 2
	case addr.Village != "":
		return 1
	default:
		return 0
	}
}

func urbanScoreFromCount(total int) int {
	switch {
	case total > UrbanHighThreshold:
		return 3
	case total > UrbanMediumThreshold:
		return 2
	case total > UrbanLowThreshold:
		return 1
	default:
		return 0
	}
}

type nearbyCounts struct {
	buildings      int
	roads          int
	amenities      int
	pois           int
	natural        int
	namedLandmarks int
}

func countNearby(elements []domain.NearbyElement) nearbyCounts {
	var c nearbyCounts
	for _, e := range elements {
		if e.HasTag(tagBuilding) {
			c.buildings++
		}
		if e.HasTag(tagHighway) {
			c.roads++
		}
		if e.HasTag(tagAmenity) {
			c.amenities++
		}
		// amenity и tourism на одном объекте считаются один раз
		if e.HasTag(tagAmenity) || e.HasTag(tagTourism) {
			c.pois++
		}
		if e.HasTag(tagNatural) {
			c.natural++
		}
		if e.HasTag(tagName) && e.HasTag(tagTourism) {
			c.namedLandmarks++
		}
	}
	return c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
