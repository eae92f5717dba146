package dto

// AnalyzeRequest - запрос на оценку сложности одной панорамы.
// Нужны либо обе координаты, либо pano_id.
type AnalyzeRequest struct {
	Lat       *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng       *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
	PanoID    string   `json:"pano_id,omitempty" validate:"omitempty,max=128"`
	UseVision *bool    `json:"use_vision,omitempty"`
	NumViews  int      `json:"num_views,omitempty" validate:"omitempty,min=1,max=8"`
}

// HasCoordinates проверяет, что переданы обе координаты
func (r *AnalyzeRequest) HasCoordinates() bool {
	return r.Lat != nil && r.Lng != nil
}
