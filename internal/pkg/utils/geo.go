package utils

import "math"

const (
	minRadiusMeters = 10
	maxRadiusMeters = 5000
)

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет радиус поиска объектов в метрах (10 - 5000 м)
func ValidateRadius(radiusMeters int) bool {
	return radiusMeters >= minRadiusMeters && radiusMeters <= maxRadiusMeters
}

// RoundCoordinate округляет координату до заданного числа знаков.
// 4 знака дают точность около 11 м, этого достаточно для ключей кеша.
func RoundCoordinate(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
