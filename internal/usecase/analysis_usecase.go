package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panoprobe/internal/difficulty"
	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/domain/repository"
	"github.com/panoprobe/internal/metrics"
	"github.com/panoprobe/internal/pkg/errors"
	"github.com/panoprobe/internal/pkg/utils"
	"github.com/panoprobe/internal/pkg/validator"
	"github.com/panoprobe/internal/usecase/dto"
	"go.uber.org/zap"
)

// PlaceLookupService - имя сервиса геокодирования в ответах об ошибках
const PlaceLookupService = "nominatim"

// AnalysisSettings - параметры анализа из конфигурации
type AnalysisSettings struct {
	RadiusMeters  int
	VisionEnabled bool
	NumViews      int
}

// AnalysisUseCase - оценка сложности панорамы
type AnalysisUseCase struct {
	placeRepo   repository.PlaceLookupRepository
	nearbyRepo  repository.NearbyFeatureRepository
	imageryRepo repository.ImageryMetadataRepository
	visionRepo  repository.VisionRepository
	settings    AnalysisSettings
	logger      *zap.Logger
}

// NewAnalysisUseCase создает новый AnalysisUseCase.
// visionRepo может быть nil, тогда анализ всегда эвристический.
func NewAnalysisUseCase(
	placeRepo repository.PlaceLookupRepository,
	nearbyRepo repository.NearbyFeatureRepository,
	imageryRepo repository.ImageryMetadataRepository,
	visionRepo repository.VisionRepository,
	settings AnalysisSettings,
	logger *zap.Logger,
) *AnalysisUseCase {
	if visionRepo == nil {
		settings.VisionEnabled = false
	}
	return &AnalysisUseCase{
		placeRepo:   placeRepo,
		nearbyRepo:  nearbyRepo,
		imageryRepo: imageryRepo,
		visionRepo:  visionRepo,
		settings:    settings,
		logger:      logger,
	}
}

// Analyze оценивает сложность одной локации.
//
// Четыре внешних запроса (геокодирование, объекты рядом, метаданные панорамы,
// vision-модель) выполняются параллельно. Отказ геокодирования прерывает анализ
// ошибкой 502, остальные источники деградируют до пустых значений.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err))
	}

	coords, resolved, err := uc.resolveCoordinates(ctx, req)
	if err != nil {
		return nil, err
	}

	useVision := uc.settings.VisionEnabled && (req.UseVision == nil || *req.UseVision)
	numViews := req.NumViews
	if numViews <= 0 {
		numViews = uc.settings.NumViews
	}

	uc.logger.Info("Analyze started",
		zap.Float64("lat", coords.Lat),
		zap.Float64("lng", coords.Lng),
		zap.String("pano_id", req.PanoID),
		zap.Bool("use_vision", useVision))

	var wg sync.WaitGroup
	var place *domain.PlaceLookup
	var placeErr error
	var nearby []domain.NearbyElement
	imagery := resolved
	vision := domain.None[domain.VisionRating]()

	wg.Add(2)
	go func() {
		defer wg.Done()
		place, placeErr = uc.placeRepo.ReverseGeocode(ctx, coords)
	}()
	go func() {
		defer wg.Done()
		nearby = uc.nearbyRepo.GetNearbyFeatures(ctx, coords, uc.settings.RadiusMeters)
	}()

	// Метаданные уже получены при восстановлении координат по pano_id
	if !imagery.IsPresent() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			imagery = uc.imageryRepo.GetMetadata(ctx, coords, req.PanoID)
		}()
	}

	if useVision {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vision = uc.visionRepo.Analyze(ctx, coords, numViews)
		}()
	}

	wg.Wait()

	if placeErr != nil {
		uc.logger.Error("Place lookup failed, analysis aborted",
			zap.Float64("lat", coords.Lat),
			zap.Float64("lng", coords.Lng),
			zap.Error(placeErr))
		return nil, errors.Upstream(PlaceLookupService, placeErr)
	}
	if place == nil {
		place = &domain.PlaceLookup{}
	}

	features := difficulty.Normalize(coords, req.PanoID, *place, nearby, imagery)
	heuristic := difficulty.Score(features)
	result := difficulty.Combine(heuristic, vision)
	method := difficulty.Method(vision.IsPresent())

	metrics.RecordAnalysis(int(result.Difficulty), method)

	uc.logger.Info("Analyze completed",
		zap.String("country_code", features.CountryCode),
		zap.Int("difficulty", int(result.Difficulty)),
		zap.Float64("raw_score", result.RawScore),
		zap.String("method", method))

	return &dto.AnalyzeResponse{
		AnalysisID:      uuid.New(),
		Features:        features,
		Heuristic:       heuristic,
		Vision:          vision,
		Result:          result,
		Method:          method,
		DifficultyLabel: result.Difficulty.Label(),
		AnalyzedAt:      time.Now().UTC(),
	}, nil
}

// resolveCoordinates возвращает координаты запроса. Если передан только pano_id,
// координаты берутся из метаданных панорамы, и эти метаданные переиспользуются.
func (uc *AnalysisUseCase) resolveCoordinates(
	ctx context.Context,
	req dto.AnalyzeRequest,
) (domain.Coordinates, domain.Optional[domain.ImageryMetadata], error) {
	none := domain.None[domain.ImageryMetadata]()

	if req.HasCoordinates() {
		if !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
			return domain.Coordinates{}, none, errors.ErrInvalidCoordinates
		}
		return domain.Coordinates{Lat: *req.Lat, Lng: *req.Lng}, none, nil
	}

	if req.Lat != nil || req.Lng != nil {
		return domain.Coordinates{}, none, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"reason": "both lat and lng are required",
		})
	}

	if req.PanoID == "" {
		return domain.Coordinates{}, none, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "lat/lng or pano_id is required",
		})
	}

	md, ok := uc.imageryRepo.ResolvePano(ctx, req.PanoID).Get()
	if !ok || md.Location == nil {
		uc.logger.Warn("Panorama could not be resolved", zap.String("pano_id", req.PanoID))
		return domain.Coordinates{}, none, errors.ErrPanoramaNotFound.WithDetails(map[string]interface{}{
			"pano_id": req.PanoID,
		})
	}

	return *md.Location, domain.Some(md), nil
}

// Examples возвращает эталонные панорамы
func (uc *AnalysisUseCase) Examples() *dto.ExamplesResponse {
	return &dto.ExamplesResponse{
		Examples: append([]domain.ExampleLocation(nil), domain.ExampleLocations...),
		Total:    len(domain.ExampleLocations),
	}
}

// Health проверяет состояние сервиса и доступность vision-модели
func (uc *AnalysisUseCase) Health(ctx context.Context) *dto.HealthResponse {
	resp := &dto.HealthResponse{
		Status:        "healthy",
		VisionEnabled: uc.settings.VisionEnabled,
		Time:          time.Now().UTC(),
	}
	if uc.settings.VisionEnabled {
		resp.VisionAvailable = uc.visionRepo.Health(ctx)
	}
	return resp
}
