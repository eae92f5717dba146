package difficulty

import (
	"fmt"
	"math"

	"github.com/panoprobe/internal/domain"
)

// Score вычисляет эвристическую сложность по признакам локации.
// Четыре измерения считаются независимо и суммируются с базовой оценкой,
// причины идут в порядке вычисления правил.
func Score(f domain.LocationFeatures) domain.DifficultyResult {
	geo, geoReasons := geographicScore(f)
	urban, urbanReasons := urbanizationScore(f)
	imagery, imageryReasons := imageryScore(f)
	uniqueness, uniquenessReasons := uniquenessScore(f)

	breakdown := domain.DifficultyBreakdown{
		GeographicScore: geo,
		UrbanScore:      urban,
		ImageryScore:    imagery,
		UniquenessScore: uniqueness,
	}

	reasons := make([]string, 0, len(geoReasons)+len(urbanReasons)+len(imageryReasons)+len(uniquenessReasons))
	reasons = append(reasons, geoReasons...)
	reasons = append(reasons, urbanReasons...)
	reasons = append(reasons, imageryReasons...)
	reasons = append(reasons, uniquenessReasons...)

	raw := BaselineScore + breakdown.Total()

	return domain.DifficultyResult{
		Difficulty: roundAndClamp(raw),
		Confidence: confidence(f),
		Reasons:    reasons,
		RawScore:   raw,
		Breakdown:  breakdown,
	}
}

func geographicScore(f domain.LocationFeatures) (float64, []string) {
	switch {
	case IsHardCountry(f.CountryCode):
		return HardCountryPenalty, []string{
			fmt.Sprintf("🌍 %s: Large country with repetitive landscapes", f.CountryCode),
		}
	case IsEasyCountry(f.CountryCode):
		return EasyCountryBonus, []string{
			fmt.Sprintf("🌍 %s: Distinctive features", f.Country),
		}
	default:
		return 0, nil
	}
}

func urbanizationScore(f domain.LocationFeatures) (float64, []string) {
	var score float64
	var reasons []string

	switch f.UrbanScore {
	case urbanScoreIsolated:
		score += IsolatedAreaPenalty
		reasons = append(reasons, fmt.Sprintf("🏜️ Isolated area (%d buildings nearby)", f.NearbyBuildingsCount))
	case urbanScoreHighUrban:
		score += UrbanAreaBonus
		reasons = append(reasons, "🏙️ Urban area - more landmarks and signs")
	}

	if f.PlaceType == domain.PlaceTypeIsolated || f.PlaceType == domain.PlaceTypeHamlet {
		score += RemotePlacePenalty
		reasons = append(reasons, "📍 Very remote location")
	}

	return score, reasons
}

func imageryScore(f domain.LocationFeatures) (float64, []string) {
	var score float64
	var reasons []string

	if f.IsTrekkerImagery {
		score += TrekkerImageryPenalty
		reasons = append(reasons, "📷 Trekker imagery (often hiking trails or remote areas)")
	}

	if f.ImageDate != nil && *f.ImageDate != "" && *f.ImageDate < OldImageryCutoff {
		score += OldImageryPenalty
		reasons = append(reasons, fmt.Sprintf("📅 Older imagery (%s)", *f.ImageDate))
	}

	return score, reasons
}

func uniquenessScore(f domain.LocationFeatures) (float64, []string) {
	var score float64
	var reasons []string

	if f.HasNamedLandmarks {
		score += NamedLandmarkBonus
		reasons = append(reasons, "🏛️ Named landmarks nearby - easier to identify")
	}

	if f.NearbyPOIsCount > ManyPOIsThreshold {
		score += ManyPOIsBonus
		reasons = append(reasons, fmt.Sprintf("📌 Many points of interest (%d)", f.NearbyPOIsCount))
	}

	if f.NearbyRoadsCount < FewRoadsThreshold {
		score += FewRoadsPenalty
		reasons = append(reasons, "🛤️ Few roads nearby - harder to navigate")
	}

	return score, reasons
}

// confidence зависит только от полноты данных, не от оценки
func confidence(f domain.LocationFeatures) float64 {
	c := BaseConfidence

	if f.Copyright != nil {
		c += DataPointConfidence
	}
	if f.ImageDate != nil {
		c += DataPointConfidence
	}
	if f.NearbyBuildingsCount > 0 {
		c += DataPointConfidence
	}
	if f.City != nil {
		c += DataPointConfidence
	}
	if f.HasNamedLandmarks {
		c += LandmarkConfidenceBonus
	}

	return math.Min(MaxConfidence, c)
}

// roundAndClamp округляет half-away-from-zero и ограничивает шкалой 1..5
func roundAndClamp(score float64) domain.Difficulty {
	rounded := math.Round(score)
	if math.IsNaN(rounded) || rounded < MinDifficulty {
		return MinDifficulty
	}
	if rounded > MaxDifficulty {
		return MaxDifficulty
	}
	return domain.Difficulty(rounded)
}
