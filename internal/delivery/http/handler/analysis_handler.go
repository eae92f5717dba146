package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/panoprobe/internal/pkg/errors"
	"github.com/panoprobe/internal/pkg/utils"
	"github.com/panoprobe/internal/usecase"
	"github.com/panoprobe/internal/usecase/dto"
)

// AnalysisHandler - обработчик запросов анализа сложности
type AnalysisHandler struct {
	analysisUC *usecase.AnalysisUseCase
	logger     *zap.Logger
}

// NewAnalysisHandler - создание нового AnalysisHandler
func NewAnalysisHandler(analysisUC *usecase.AnalysisUseCase, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUC: analysisUC,
		logger:     logger,
	}
}

// Analyze godoc
// @Summary Оценка сложности панорамы
// @Description Собирает признаки локации (геокодирование, объекты OSM рядом, метаданные Street View), считает эвристическую сложность 1..5 и при доступности объединяет её с оценкой vision-модели. Нужны либо lat и lng, либо pano_id.
// @Tags Difficulty
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Координаты или ID панорамы"
// @Success 200 {object} utils.SuccessResponse{data=dto.AnalyzeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/difficulty [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Invalid request body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "invalid request body",
		}))
	}

	return h.analyze(c, req)
}

// AnalyzeGET godoc
// @Summary Оценка сложности панорамы (GET)
// @Description То же, что POST /api/v1/difficulty, параметры передаются в query
// @Tags Difficulty
// @Produce json
// @Param lat query number false "Широта"
// @Param lng query number false "Долгота"
// @Param pano_id query string false "ID панорамы Street View"
// @Param use_vision query bool false "Использовать vision-модель" default(true)
// @Param num_views query int false "Число ракурсов для vision-модели"
// @Success 200 {object} utils.SuccessResponse{data=dto.AnalyzeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/difficulty [get]
func (h *AnalysisHandler) AnalyzeGET(c *fiber.Ctx) error {
	req := dto.AnalyzeRequest{
		PanoID:   c.Query("pano_id"),
		NumViews: c.QueryInt("num_views", 0),
	}

	var err error
	if req.Lat, err = queryFloat(c, "lat"); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"lat": c.Query("lat")}))
	}
	if req.Lng, err = queryFloat(c, "lng"); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"lng": c.Query("lng")}))
	}

	if raw := c.Query("use_vision"); raw != "" {
		useVision, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"use_vision": raw}))
		}
		req.UseVision = &useVision
	}

	return h.analyze(c, req)
}

func (h *AnalysisHandler) analyze(c *fiber.Ctx, req dto.AnalyzeRequest) error {
	start := time.Now()

	result, err := h.analysisUC.Analyze(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetExamples godoc
// @Summary Эталонные панорамы
// @Description Панорамы с заранее известной сложностью для ручной проверки калибровки
// @Tags Difficulty
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ExamplesResponse}
// @Router /api/v1/examples [get]
func (h *AnalysisHandler) GetExamples(c *fiber.Ctx) error {
	result := h.analysisUC.Examples()
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Health godoc
// @Summary Проверка состояния
// @Description Состояние сервиса и доступность vision-модели
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/v1/health [get]
func (h *AnalysisHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.analysisUC.Health(c.Context()))
}

// queryFloat возвращает nil, если параметр не передан
func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
