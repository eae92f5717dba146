package domain

// Coordinates - географические координаты панорамы
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceType - тип населённого пункта по административному ответу
type PlaceType string

const (
	PlaceTypeCity     PlaceType = "city"
	PlaceTypeTown     PlaceType = "town"
	PlaceTypeVillage  PlaceType = "village"
	PlaceTypeHamlet   PlaceType = "hamlet"
	PlaceTypeIsolated PlaceType = "isolated"
)

// PlaceLookup - ответ сервиса обратного геокодирования (формат Nominatim).
// Все поля необязательны, пустая строка означает отсутствие поля.
type PlaceLookup struct {
	Address     PlaceAddress `json:"address"`
	DisplayName string       `json:"display_name,omitempty"`
}

// PlaceAddress - административный адрес точки
type PlaceAddress struct {
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	City        string `json:"city,omitempty"`
	Town        string `json:"town,omitempty"`
	Village     string `json:"village,omitempty"`
	Hamlet      string `json:"hamlet,omitempty"`
	State       string `json:"state,omitempty"`
	Suburb      string `json:"suburb,omitempty"`
}

// NearbyElement - географический объект рядом с точкой с открытым набором тегов
type NearbyElement struct {
	Type string            `json:"type"`
	Tags map[string]string `json:"tags,omitempty"`
}

// HasTag проверяет, что тег присутствует и не пуст
func (e NearbyElement) HasTag(key string) bool {
	return e.Tags[key] != ""
}

// ImageryMetadata - метаданные панорамы Street View
type ImageryMetadata struct {
	PanoID    string       `json:"pano_id,omitempty"`
	Date      string       `json:"date,omitempty"`
	Copyright string       `json:"copyright,omitempty"`
	Status    string       `json:"status"`
	Location  *Coordinates `json:"location,omitempty"`
}

// LocationFeatures - каноническая запись признаков локации.
// Строится один раз нормализатором и далее не изменяется.
type LocationFeatures struct {
	PanoID *string `json:"pano_id,omitempty"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`

	Country     string    `json:"country"`
	CountryCode string    `json:"country_code"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	PlaceType   PlaceType `json:"place_type"`

	NearbyBuildingsCount int  `json:"nearby_buildings_count"`
	NearbyRoadsCount     int  `json:"nearby_roads_count"`
	NearbyPOIsCount      int  `json:"nearby_pois_count"`
	NaturalFeaturesCount int  `json:"natural_features_count"`
	HasNamedLandmarks    bool `json:"has_named_landmarks"`
	PopulationDensity    int  `json:"population_density"`
	UrbanScore           int  `json:"urban_score"`

	ImageDate           *string `json:"image_date,omitempty"`
	Copyright           *string `json:"copyright,omitempty"`
	IsTrekkerImagery    bool    `json:"is_trekker_imagery"`
	IsHistoricalImagery bool    `json:"is_historical_imagery"`
}
