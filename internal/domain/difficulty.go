package domain

// Difficulty - итоговая оценка сложности в шкале 1..5
type Difficulty int

const (
	DifficultyVeryEasy Difficulty = 1
	DifficultyEasy     Difficulty = 2
	DifficultyMedium   Difficulty = 3
	DifficultyHard     Difficulty = 4
	DifficultyVeryHard Difficulty = 5
)

// Label возвращает человекочитаемое название уровня
func (d Difficulty) Label() string {
	switch d {
	case DifficultyVeryEasy:
		return "Very Easy"
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyVeryHard:
		return "Very Hard"
	default:
		return "Unknown"
	}
}

// DifficultyBreakdown - вклад четырёх независимых измерений эвристики
type DifficultyBreakdown struct {
	GeographicScore float64 `json:"geographic_score"`
	UrbanScore      float64 `json:"urban_score"`
	ImageryScore    float64 `json:"imagery_score"`
	UniquenessScore float64 `json:"uniqueness_score"`
}

// Total возвращает сумму всех вкладов
func (b DifficultyBreakdown) Total() float64 {
	return b.GeographicScore + b.UrbanScore + b.ImageryScore + b.UniquenessScore
}

// DifficultyResult - вердикт анализа сложности
type DifficultyResult struct {
	Difficulty Difficulty          `json:"difficulty"`
	Confidence float64             `json:"confidence"`
	Reasons    []string            `json:"reasons"`
	RawScore   float64             `json:"raw_score"`
	Breakdown  DifficultyBreakdown `json:"breakdown"`
}

// VisionRating - ответ vision-сервиса (CLIP) по изображению панорамы.
// Данные недоверенные, флаги и тип сцены в итоговый breakdown не попадают.
type VisionRating struct {
	Difficulty         float64  `json:"difficulty"`
	Confidence         float64  `json:"confidence"`
	Insights           []string `json:"insights"`
	HasText            bool     `json:"has_text"`
	HasLandmark        bool     `json:"has_landmark"`
	IsGeneric          bool     `json:"is_generic"`
	IsUrban            bool     `json:"is_urban"`
	SceneType          string   `json:"scene_type"`
	RawDifficultyScore float64  `json:"raw_difficulty_score"`
}
