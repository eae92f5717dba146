package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/panoprobe/internal/config"
	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/domain/repository"
	"github.com/panoprobe/internal/metrics"
	"github.com/panoprobe/internal/pkg/breaker"
)

const (
	serviceName   = "vision"
	healthTimeout = 3 * time.Second
)

var errBackendUnavailable = errors.New("vision backend unavailable")

type client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[domain.Optional[domain.VisionRating]]
	logger     *zap.Logger
}

type analyzeRequest struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	NumViews int     `json:"num_views"`
}

type analyzeResponse struct {
	ClipAnalysis *domain.VisionRating `json:"clip_analysis"`
}

// NewClient создает клиент сервиса CLIP-анализа панорам
func NewClient(cfg *config.VisionConfig, logger *zap.Logger) repository.VisionRepository {
	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.URL,
		breaker:    breaker.New[domain.Optional[domain.VisionRating]](breaker.DefaultSettings(serviceName), logger),
		logger:     logger.With(zap.String("component", serviceName)),
	}
}

// Analyze возвращает None при отсутствии панорамы (404), неготовности
// модели (503), любых других ошибках и при разомкнутом circuit breaker
func (c *client) Analyze(ctx context.Context, coords domain.Coordinates, numViews int) domain.Optional[domain.VisionRating] {
	if numViews < 1 {
		numViews = 1
	}

	started := time.Now()
	rating, err := c.breaker.Execute(func() (domain.Optional[domain.VisionRating], error) {
		return c.analyze(ctx, coords, numViews)
	})
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = metrics.OutcomeRejected
		}
		metrics.ObserveUpstream(serviceName, outcome, started)
		c.logger.Warn("Vision analysis unavailable", zap.Error(err))
		return domain.None[domain.VisionRating]()
	}

	outcome := metrics.OutcomeSuccess
	if !rating.IsPresent() {
		outcome = metrics.OutcomeNotFound
	}
	metrics.ObserveUpstream(serviceName, outcome, started)
	return rating
}

func (c *client) analyze(ctx context.Context, coords domain.Coordinates, numViews int) (domain.Optional[domain.VisionRating], error) {
	none := domain.None[domain.VisionRating]()

	body, err := json.Marshal(analyzeRequest{Lat: coords.Lat, Lng: coords.Lng, NumViews: numViews})
	if err != nil {
		return none, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", bytes.NewReader(body))
	if err != nil {
		return none, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Calling vision backend",
		zap.Float64("lat", coords.Lat),
		zap.Float64("lng", coords.Lng),
		zap.Int("num_views", numViews))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return none, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		// у точки нет панорамы, сервис при этом исправен
		c.logger.Debug("No imagery available for vision analysis")
		return none, nil
	case http.StatusServiceUnavailable:
		return none, errBackendUnavailable
	default:
		return none, fmt.Errorf("vision backend error: status %d", resp.StatusCode)
	}

	var payload analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return none, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.ClipAnalysis == nil {
		return none, errors.New("vision response has no clip_analysis")
	}

	return domain.Some(*payload.ClipAnalysis), nil
}

// Health проверяет доступность сервиса, ожидание не дольше 3 секунд
func (c *client) Health(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Vision backend not available", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
