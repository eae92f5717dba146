package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/panoprobe/internal/domain"
)

func ptr(s string) *string {
	return &s
}

// mediumFeatures не срабатывает ни одно правило
func mediumFeatures() domain.LocationFeatures {
	return domain.LocationFeatures{
		Country:          "France",
		CountryCode:      "FR",
		PlaceType:        domain.PlaceTypeTown,
		UrbanScore:       2,
		NearbyRoadsCount: 5,
	}
}

func TestScore_Baseline(t *testing.T) {
	r := Score(mediumFeatures())

	assert.Equal(t, domain.DifficultyMedium, r.Difficulty)
	assert.Equal(t, BaselineScore, r.RawScore)
	assert.Empty(t, r.Reasons)
	assert.NotNil(t, r.Reasons)
	assert.Equal(t, domain.DifficultyBreakdown{}, r.Breakdown)
	assert.Equal(t, BaseConfidence, r.Confidence)
}

func TestScore_RemoteRussia(t *testing.T) {
	f := domain.LocationFeatures{
		Country:          "Russia",
		CountryCode:      "RU",
		UrbanScore:       0,
		PlaceType:        domain.PlaceTypeIsolated,
		NearbyRoadsCount: 1,
	}

	r := Score(f)

	assert.InDelta(t, 0.8, r.Breakdown.GeographicScore, 1e-9)
	assert.InDelta(t, 2.5, r.Breakdown.UrbanScore, 1e-9)
	assert.InDelta(t, 0, r.Breakdown.ImageryScore, 1e-9)
	assert.InDelta(t, 0.8, r.Breakdown.UniquenessScore, 1e-9)
	assert.InDelta(t, 7.1, r.RawScore, 1e-9)
	assert.Equal(t, domain.DifficultyVeryHard, r.Difficulty)
	assert.Equal(t, []string{
		"🌍 RU: Large country with repetitive landscapes",
		"🏜️ Isolated area (0 buildings nearby)",
		"📍 Very remote location",
		"🛤️ Few roads nearby - harder to navigate",
	}, r.Reasons)
}

func TestScore_UrbanJapan(t *testing.T) {
	f := domain.LocationFeatures{
		Country:           "Japan",
		CountryCode:       "JP",
		City:              ptr("Tokyo"),
		PlaceType:         domain.PlaceTypeCity,
		UrbanScore:        3,
		HasNamedLandmarks: true,
		NearbyPOIsCount:   15,
		NearbyRoadsCount:  10,
	}

	r := Score(f)

	assert.InDelta(t, -0.5, r.Breakdown.GeographicScore, 1e-9)
	assert.InDelta(t, -0.5, r.Breakdown.UrbanScore, 1e-9)
	assert.InDelta(t, -1.5, r.Breakdown.UniquenessScore, 1e-9)
	assert.InDelta(t, 0.5, r.RawScore, 1e-9)
	assert.Equal(t, domain.DifficultyVeryEasy, r.Difficulty)
	assert.Equal(t, "🌍 Japan: Distinctive features", r.Reasons[0])
	assert.Contains(t, r.Reasons, "📌 Many points of interest (15)")
}

func TestGeographicScore(t *testing.T) {
	score, reasons := geographicScore(domain.LocationFeatures{CountryCode: "KZ"})
	assert.Equal(t, HardCountryPenalty, score)
	assert.Len(t, reasons, 1)

	score, reasons = geographicScore(domain.LocationFeatures{Country: "Netherlands", CountryCode: "NL"})
	assert.Equal(t, EasyCountryBonus, score)
	assert.Equal(t, []string{"🌍 Netherlands: Distinctive features"}, reasons)

	score, reasons = geographicScore(domain.LocationFeatures{CountryCode: UnknownCountryCode})
	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestCountrySetsDisjoint(t *testing.T) {
	for code := range hardCountries {
		assert.False(t, IsEasyCountry(code), code)
	}
}

func TestUrbanizationScore_HamletStacksWithUrban(t *testing.T) {
	score, reasons := urbanizationScore(domain.LocationFeatures{UrbanScore: 3, PlaceType: domain.PlaceTypeHamlet})

	assert.InDelta(t, 0.5, score, 1e-9)
	assert.Equal(t, []string{"🏙️ Urban area - more landmarks and signs", "📍 Very remote location"}, reasons)

	score, reasons = urbanizationScore(domain.LocationFeatures{UrbanScore: 1, PlaceType: domain.PlaceTypeVillage})
	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestImageryScore(t *testing.T) {
	tests := []struct {
		name     string
		features domain.LocationFeatures
		expected float64
		reasons  int
	}{
		{"no imagery", domain.LocationFeatures{}, 0, 0},
		{"trekker", domain.LocationFeatures{IsTrekkerImagery: true, ImageDate: ptr("2020-01")}, 1.5, 1},
		{"old imagery", domain.LocationFeatures{ImageDate: ptr("2014-12")}, 0.5, 1},
		{"cutoff year is not old", domain.LocationFeatures{ImageDate: ptr("2015-01")}, 0, 0},
		{"trekker and old stack", domain.LocationFeatures{IsTrekkerImagery: true, ImageDate: ptr("2009-07")}, 2.0, 2},
		{"empty date ignored", domain.LocationFeatures{ImageDate: ptr("")}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reasons := imageryScore(tt.features)
			assert.InDelta(t, tt.expected, score, 1e-9)
			assert.Len(t, reasons, tt.reasons)
		})
	}
}

func TestImageryScore_LexicographicDateComparison(t *testing.T) {
	// нечисловые префиксы сравниваются как строки
	score, _ := imageryScore(domain.LocationFeatures{ImageDate: ptr("201")})
	assert.InDelta(t, 0.5, score, 1e-9)

	score, _ = imageryScore(domain.LocationFeatures{ImageDate: ptr("unknown")})
	assert.Zero(t, score)
}

func TestUniquenessScore_AllApply(t *testing.T) {
	score, reasons := uniquenessScore(domain.LocationFeatures{
		HasNamedLandmarks: true,
		NearbyPOIsCount:   11,
		NearbyRoadsCount:  2,
	})

	assert.InDelta(t, -0.7, score, 1e-9)
	assert.Len(t, reasons, 3)
}

func TestUniquenessScore_Thresholds(t *testing.T) {
	score, reasons := uniquenessScore(domain.LocationFeatures{NearbyPOIsCount: 10, NearbyRoadsCount: 3})

	assert.Zero(t, score)
	assert.Empty(t, reasons)
}

func TestRoundAndClamp(t *testing.T) {
	tests := []struct {
		raw      float64
		expected domain.Difficulty
	}{
		{3.5, 4},
		{2.5, 3},
		{3.49, 3},
		{1.4, 1},
		{0.5, 1},
		{-2.0, 1},
		{6.2, 5},
		{4.5, 5},
		{100, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, roundAndClamp(tt.raw), "raw=%v", tt.raw)
	}
}

func TestConfidence(t *testing.T) {
	t.Run("all bonuses clamp to one", func(t *testing.T) {
		f := domain.LocationFeatures{
			Copyright:            ptr("© Google"),
			ImageDate:            ptr("2021-05"),
			NearbyBuildingsCount: 4,
			City:                 ptr("Bern"),
			HasNamedLandmarks:    true,
		}
		assert.Equal(t, 1.0, confidence(f))
	})

	t.Run("partial data", func(t *testing.T) {
		f := domain.LocationFeatures{NearbyBuildingsCount: 1, City: ptr("Bern")}
		assert.InDelta(t, 0.7, confidence(f), 1e-9)
	})

	t.Run("landmarks only", func(t *testing.T) {
		assert.InDelta(t, 0.7, confidence(domain.LocationFeatures{HasNamedLandmarks: true}), 1e-9)
	})
}

func TestScore_AlwaysInRange(t *testing.T) {
	placeTypes := []domain.PlaceType{
		domain.PlaceTypeCity, domain.PlaceTypeTown, domain.PlaceTypeVillage,
		domain.PlaceTypeHamlet, domain.PlaceTypeIsolated,
	}
	codes := []string{"RU", "JP", "FR", UnknownCountryCode}

	for _, code := range codes {
		for _, pt := range placeTypes {
			for urban := 0; urban <= 3; urban++ {
				for _, flags := range []bool{true, false} {
					f := domain.LocationFeatures{
						CountryCode:       code,
						PlaceType:         pt,
						UrbanScore:        urban,
						IsTrekkerImagery:  flags,
						HasNamedLandmarks: !flags,
						ImageDate:         ptr("2010-01"),
						Copyright:         ptr("x"),
						City:              ptr("c"),
						NearbyPOIsCount:   20,
						NearbyRoadsCount:  0,
					}
					r := Score(f)
					assert.GreaterOrEqual(t, int(r.Difficulty), MinDifficulty)
					assert.LessOrEqual(t, int(r.Difficulty), MaxDifficulty)
					assert.GreaterOrEqual(t, r.Confidence, 0.0)
					assert.LessOrEqual(t, r.Confidence, 1.0)
				}
			}
		}
	}
}
