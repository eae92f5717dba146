package domain

// ExampleLocation - эталонная панорама с ожидаемой сложностью
type ExampleLocation struct {
	Name               string     `json:"name"`
	PanoID             string     `json:"pano_id"`
	ExpectedDifficulty Difficulty `json:"expected_difficulty"`
}

// ExampleLocations - набор панорам для ручной проверки калибровки
var ExampleLocations = []ExampleLocation{
	{Name: "Location 1", PanoID: "Iu7JF_lQxq0kPaHaVupiJw", ExpectedDifficulty: DifficultyVeryEasy},
	{Name: "Location 2", PanoID: "CkgOEcX22J5r4bB3mjXPoA", ExpectedDifficulty: DifficultyEasy},
	{Name: "Location 3", PanoID: "ft8UTxuSKhyFhI7ycTjL6g", ExpectedDifficulty: DifficultyMedium},
	{Name: "Location 4", PanoID: "v7EcjeQ2lD1drKzVgBr_HQ", ExpectedDifficulty: DifficultyHard},
	{Name: "Location 5", PanoID: "Mf0OdaX5NePiLVylK1VkiQ", ExpectedDifficulty: DifficultyVeryHard},
}
