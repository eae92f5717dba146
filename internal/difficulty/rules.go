package difficulty

const (
	// BaselineScore - стартовая оценка (medium)
	BaselineScore = 3.0

	MinDifficulty = 1
	MaxDifficulty = 5

	// UnknownCountry / UnknownCountryCode - значения, если геокодер не вернул страну
	UnknownCountry     = "Unknown"
	UnknownCountryCode = "XX"

	// PrimaryImageryProvider - копирайт основного провайдера панорам.
	// Панорамы с другим копирайтом считаются trekker/community съёмкой.
	PrimaryImageryProvider = "Google"
)

// Пороги urbanScore по суммарному числу зданий, дорог и amenity
const (
	UrbanHighThreshold   = 50
	UrbanMediumThreshold = 20
	UrbanLowThreshold    = 5
)

// Веса географического измерения
const (
	HardCountryPenalty = 0.8
	EasyCountryBonus   = -0.5
)

// Веса урбанизации
const (
	IsolatedAreaPenalty = 1.5
	UrbanAreaBonus      = -0.5
	RemotePlacePenalty  = 1.0
	urbanScoreIsolated  = 0
	urbanScoreHighUrban = 3
)

// Веса качества съёмки
const (
	TrekkerImageryPenalty = 1.5
	OldImageryPenalty     = 0.5

	// OldImageryCutoff сравнивается со строкой даты лексикографически,
	// даты приходят в формате "YYYY-MM"
	OldImageryCutoff = "2015"
)

// Веса уникальности
const (
	NamedLandmarkBonus = -1.0
	ManyPOIsBonus      = -0.5
	FewRoadsPenalty    = 0.8
	ManyPOIsThreshold  = 10
	FewRoadsThreshold  = 3
)

// Уверенность
const (
	BaseConfidence          = 0.5
	DataPointConfidence     = 0.1
	LandmarkConfidenceBonus = 0.2
	MaxConfidence           = 1.0
)

// Ансамбль
const (
	VisionWeight          = 0.4
	HeuristicWeight       = 0.6
	DisagreementThreshold = 2.0
	VisionReasonPrefix    = "🤖 AI: "
)

const (
	MethodEnsemble  = "Ensemble (AI + Heuristics)"
	MethodHeuristic = "Heuristics Only"
)

// hardCountries - большие страны с однообразным ландшафтом
var hardCountries = map[string]struct{}{
	"RU": {}, "KZ": {}, "MN": {}, "BR": {}, "AU": {}, "CA": {},
}

// easyCountries - страны с очень узнаваемыми признаками
var easyCountries = map[string]struct{}{
	"JP": {}, "GB": {}, "NL": {}, "CH": {},
}

// IsHardCountry проверяет вхождение ISO-кода в набор "сложных" стран
func IsHardCountry(code string) bool {
	_, ok := hardCountries[code]
	return ok
}

// IsEasyCountry проверяет вхождение ISO-кода в набор "лёгких" стран
func IsEasyCountry(code string) bool {
	_, ok := easyCountries[code]
	return ok
}
