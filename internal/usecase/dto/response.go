package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/panoprobe/internal/domain"
)

// AnalyzeResponse - результат анализа сложности
type AnalyzeResponse struct {
	AnalysisID      uuid.UUID                            `json:"analysis_id"`
	Features        domain.LocationFeatures              `json:"features"`
	Heuristic       domain.DifficultyResult              `json:"heuristic"`
	Vision          domain.Optional[domain.VisionRating] `json:"vision" swaggertype:"object"`
	Result          domain.DifficultyResult              `json:"result"`
	Method          string                               `json:"method"`
	DifficultyLabel string                               `json:"difficulty_label"`
	AnalyzedAt      time.Time                            `json:"analyzed_at"`
}

// ExamplesResponse - эталонные панорамы
type ExamplesResponse struct {
	Examples []domain.ExampleLocation `json:"examples"`
	Total    int                      `json:"total"`
}

// HealthResponse - состояние сервиса и зависимостей
type HealthResponse struct {
	Status          string    `json:"status"`
	VisionEnabled   bool      `json:"vision_enabled"`
	VisionAvailable bool      `json:"vision_available"`
	Time            time.Time `json:"time"`
}
