package difficulty

import (
	"fmt"
	"math"
	"strconv"

	"github.com/panoprobe/internal/domain"
)

// Combine объединяет эвристический результат с оценкой vision-модели.
// Без vision-оценки эвристический результат возвращается без изменений.
// Breakdown всегда описывает только эвристику.
func Combine(heuristic domain.DifficultyResult, vision domain.Optional[domain.VisionRating]) domain.DifficultyResult {
	v, ok := vision.Get()
	if !ok {
		return heuristic
	}

	heuristicDifficulty := float64(heuristic.Difficulty)
	raw := v.Difficulty*VisionWeight + heuristicDifficulty*HeuristicWeight

	reasons := make([]string, 0, len(heuristic.Reasons)+len(v.Insights)+1)
	reasons = append(reasons, heuristic.Reasons...)
	for _, insight := range v.Insights {
		reasons = append(reasons, VisionReasonPrefix+insight)
	}

	if math.Abs(v.Difficulty-heuristicDifficulty) >= DisagreementThreshold {
		reasons = append(reasons, fmt.Sprintf(
			"⚠️ AI and heuristics disagree (AI: %s, Heuristic: %d)",
			strconv.FormatFloat(v.Difficulty, 'f', -1, 64),
			heuristic.Difficulty,
		))
	}

	return domain.DifficultyResult{
		Difficulty: roundAndClamp(raw),
		Confidence: clampUnit(v.Confidence*0.5 + heuristic.Confidence*0.5),
		Reasons:    reasons,
		RawScore:   raw,
		Breakdown:  heuristic.Breakdown,
	}
}

// Method возвращает описание способа анализа
func Method(hasVision bool) string {
	if hasVision {
		return MethodEnsemble
	}
	return MethodHeuristic
}

// clampUnit ограничивает значение отрезком [0,1]
func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(MaxConfidence, v)
}
