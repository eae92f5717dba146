package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panoprobe/internal/domain"
)

var testCoords = domain.Coordinates{Lat: 61.52, Lng: 105.31}

func element(tags map[string]string) domain.NearbyElement {
	return domain.NearbyElement{Type: "node", Tags: tags}
}

func repeat(n int, tags map[string]string) []domain.NearbyElement {
	out := make([]domain.NearbyElement, n)
	for i := range out {
		out[i] = element(tags)
	}
	return out
}

func TestNormalize_PlaceType(t *testing.T) {
	tests := []struct {
		name     string
		addr     domain.PlaceAddress
		expected domain.PlaceType
		density  int
	}{
		{"city wins over town", domain.PlaceAddress{City: "Tokyo", Town: "Shibuya"}, domain.PlaceTypeCity, 3},
		{"town", domain.PlaceAddress{Town: "Zermatt", Village: "x"}, domain.PlaceTypeTown, 2},
		{"village", domain.PlaceAddress{Village: "Giethoorn"}, domain.PlaceTypeVillage, 1},
		{"hamlet", domain.PlaceAddress{Hamlet: "Oymyakon"}, domain.PlaceTypeHamlet, 0},
		{"nothing", domain.PlaceAddress{}, domain.PlaceTypeIsolated, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Normalize(testCoords, "", domain.PlaceLookup{Address: tt.addr}, nil, domain.None[domain.ImageryMetadata]())
			assert.Equal(t, tt.expected, f.PlaceType)
			assert.Equal(t, tt.density, f.PopulationDensity)
		})
	}
}

func TestNormalize_CountryFallback(t *testing.T) {
	f := Normalize(testCoords, "", domain.PlaceLookup{}, nil, domain.None[domain.ImageryMetadata]())

	assert.Equal(t, UnknownCountry, f.Country)
	assert.Equal(t, UnknownCountryCode, f.CountryCode)
	assert.Nil(t, f.City)
	assert.Nil(t, f.State)
	assert.Nil(t, f.PanoID)
	assert.Equal(t, 0, f.UrbanScore)

	f = Normalize(testCoords, "", domain.PlaceLookup{Address: domain.PlaceAddress{Country: "Russia", CountryCode: "ru"}}, nil, domain.None[domain.ImageryMetadata]())
	assert.Equal(t, "Russia", f.Country)
	assert.Equal(t, "RU", f.CountryCode, "country code is upper-cased")
}

func TestNormalize_CityFallsBackToTown(t *testing.T) {
	f := Normalize(testCoords, "", domain.PlaceLookup{Address: domain.PlaceAddress{Town: "Zermatt", State: "Valais"}}, nil, domain.None[domain.ImageryMetadata]())

	require.NotNil(t, f.City)
	assert.Equal(t, "Zermatt", *f.City)
	require.NotNil(t, f.State)
	assert.Equal(t, "Valais", *f.State)
}

func TestNormalize_Counts(t *testing.T) {
	nearby := []domain.NearbyElement{
		element(map[string]string{"building": "yes"}),
		element(map[string]string{"building": "yes", "name": "Town hall"}),
		element(map[string]string{"highway": "primary"}),
		element(map[string]string{"amenity": "cafe", "tourism": "attraction"}),
		element(map[string]string{"tourism": "museum"}),
		element(map[string]string{"natural": "peak"}),
		{Type: "way"},
	}

	f := Normalize(testCoords, "", domain.PlaceLookup{}, nearby, domain.None[domain.ImageryMetadata]())

	assert.Equal(t, 2, f.NearbyBuildingsCount)
	assert.Equal(t, 1, f.NearbyRoadsCount)
	assert.Equal(t, 2, f.NearbyPOIsCount, "amenity+tourism element counts once")
	assert.Equal(t, 1, f.NaturalFeaturesCount)
	assert.False(t, f.HasNamedLandmarks, "named building without tourism tag is not a landmark")
}

func TestNormalize_AmenityAndTourismCountOnce(t *testing.T) {
	nearby := []domain.NearbyElement{element(map[string]string{"amenity": "restaurant", "tourism": "hotel"})}

	f := Normalize(testCoords, "", domain.PlaceLookup{}, nearby, domain.None[domain.ImageryMetadata]())

	assert.Equal(t, 1, f.NearbyPOIsCount)
}

func TestNormalize_NamedLandmark(t *testing.T) {
	nearby := []domain.NearbyElement{element(map[string]string{"name": "Tokyo Tower", "tourism": "attraction"})}

	f := Normalize(testCoords, "", domain.PlaceLookup{}, nearby, domain.None[domain.ImageryMetadata]())

	assert.True(t, f.HasNamedLandmarks)
}

func TestNormalize_UrbanScoreBuckets(t *testing.T) {
	tests := []struct {
		total    int
		expected int
	}{
		{0, 0},
		{5, 0},
		{6, 1},
		{20, 1},
		{21, 2},
		{50, 2},
		{51, 3},
	}

	for _, tt := range tests {
		nearby := repeat(tt.total, map[string]string{"highway": "secondary"})
		f := Normalize(testCoords, "", domain.PlaceLookup{}, nearby, domain.None[domain.ImageryMetadata]())
		assert.Equal(t, tt.expected, f.UrbanScore, "total=%d", tt.total)
	}
}

func TestNormalize_UrbanScoreSumsCategories(t *testing.T) {
	// 3 tags on each of 2 elements -> 6 > 5
	nearby := repeat(2, map[string]string{"building": "yes", "highway": "service", "amenity": "bank"})

	f := Normalize(testCoords, "", domain.PlaceLookup{}, nearby, domain.None[domain.ImageryMetadata]())

	assert.Equal(t, 1, f.UrbanScore)
}

func TestNormalize_Imagery(t *testing.T) {
	t.Run("absent metadata", func(t *testing.T) {
		f := Normalize(testCoords, "pano-1", domain.PlaceLookup{}, nil, domain.None[domain.ImageryMetadata]())

		assert.False(t, f.IsTrekkerImagery)
		assert.Nil(t, f.ImageDate)
		assert.Nil(t, f.Copyright)
		require.NotNil(t, f.PanoID)
		assert.Equal(t, "pano-1", *f.PanoID)
	})

	t.Run("primary provider", func(t *testing.T) {
		md := domain.ImageryMetadata{Date: "2019-06", Copyright: "© 2019 Google", Status: "OK", PanoID: "abc"}
		f := Normalize(testCoords, "", domain.PlaceLookup{}, nil, domain.Some(md))

		assert.False(t, f.IsTrekkerImagery)
		require.NotNil(t, f.ImageDate)
		assert.Equal(t, "2019-06", *f.ImageDate)
		require.NotNil(t, f.PanoID)
		assert.Equal(t, "abc", *f.PanoID, "pano id taken from metadata when not supplied")
	})

	t.Run("third party contributor", func(t *testing.T) {
		md := domain.ImageryMetadata{Date: "2012-03", Copyright: "© John Hiker", Status: "OK"}
		f := Normalize(testCoords, "", domain.PlaceLookup{}, nil, domain.Some(md))

		assert.True(t, f.IsTrekkerImagery)
		assert.False(t, f.IsHistoricalImagery)
	})

	t.Run("present but empty metadata", func(t *testing.T) {
		f := Normalize(testCoords, "", domain.PlaceLookup{}, nil, domain.Some(domain.ImageryMetadata{}))

		assert.False(t, f.IsTrekkerImagery, "no copyright means no attribution to judge")
		assert.Nil(t, f.Copyright)
	})
}
