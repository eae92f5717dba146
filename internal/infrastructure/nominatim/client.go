package nominatim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/panoprobe/internal/config"
	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/domain/repository"
	"github.com/panoprobe/internal/metrics"
	"github.com/panoprobe/internal/pkg/breaker"
)

const serviceName = "nominatim"

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	zoom       int
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*domain.PlaceLookup]
	logger     *zap.Logger
}

// reverseResponse - ответ /reverse. Для точек без адреса (океан)
// приходит 200 с полем error и пустым address.
type reverseResponse struct {
	Address     domain.PlaceAddress `json:"address"`
	DisplayName string              `json:"display_name"`
	Error       string              `json:"error"`
}

// NewClient создает клиент обратного геокодирования Nominatim.
// Запросы ограничены cfg.RPS в секунду (политика публичного сервера - 1 rps).
func NewClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.PlaceLookupRepository {
	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.URL,
		userAgent:  cfg.UserAgent,
		zoom:       cfg.Zoom,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RPS), 1),
		breaker:    breaker.New[*domain.PlaceLookup](breaker.DefaultSettings(serviceName), logger),
		logger:     logger.With(zap.String("component", serviceName)),
	}
}

// ReverseGeocode возвращает административный адрес точки
func (c *client) ReverseGeocode(ctx context.Context, coords domain.Coordinates) (*domain.PlaceLookup, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("nominatim rate limiter: %w", err)
	}

	started := time.Now()
	place, err := c.breaker.Execute(func() (*domain.PlaceLookup, error) {
		return c.reverse(ctx, coords)
	})
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = metrics.OutcomeRejected
		}
		metrics.ObserveUpstream(serviceName, outcome, started)
		return nil, err
	}

	metrics.ObserveUpstream(serviceName, metrics.OutcomeSuccess, started)
	return place, nil
}

func (c *client) reverse(ctx context.Context, coords domain.Coordinates) (*domain.PlaceLookup, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coords.Lng, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("zoom", strconv.Itoa(c.zoom))

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Calling Nominatim reverse",
		zap.Float64("lat", coords.Lat),
		zap.Float64("lng", coords.Lng))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Nominatim returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.Error != "" {
		c.logger.Debug("Nominatim found no address", zap.String("reason", payload.Error))
	}

	return &domain.PlaceLookup{
		Address:     payload.Address,
		DisplayName: payload.DisplayName,
	}, nil
}
