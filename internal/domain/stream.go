package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamDifficultyAnalyze = "stream:difficulty:analyze"
	StreamDifficultyDone    = "stream:difficulty:done"
)

// AnalysisRequestEvent - входящее событие на анализ одной локации
type AnalysisRequestEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	PanoID    *string   `json:"pano_id,omitempty"`
	UseVision *bool     `json:"use_vision,omitempty"`
}

// HasCoordinates проверяет наличие обеих координат
func (e *AnalysisRequestEvent) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// HasPanoID проверяет наличие непустого идентификатора панорамы
func (e *AnalysisRequestEvent) HasPanoID() bool {
	return e.PanoID != nil && *e.PanoID != ""
}

// AnalysisDoneEvent - результат анализа
type AnalysisDoneEvent struct {
	RequestID       uuid.UUID         `json:"request_id"`
	AnalysisID      uuid.UUID         `json:"analysis_id,omitempty"`
	Difficulty      Difficulty        `json:"difficulty,omitempty"`
	DifficultyLabel string            `json:"difficulty_label,omitempty"`
	Method          string            `json:"method,omitempty"`
	Result          *DifficultyResult `json:"result,omitempty"`
	Error           string            `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
