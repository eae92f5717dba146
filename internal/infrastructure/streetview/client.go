package streetview

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/panoprobe/internal/config"
	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/domain/repository"
	"github.com/panoprobe/internal/metrics"
)

const (
	serviceName = "streetview"
	statusOK    = "OK"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

type metadataResponse struct {
	PanoID    string              `json:"pano_id"`
	Date      string              `json:"date"`
	Copyright string              `json:"copyright"`
	Status    string              `json:"status"`
	Location  *domain.Coordinates `json:"location"`
}

// NewClient создает клиент Street View Metadata API.
// Без API-ключа клиент работает, но всегда возвращает None.
func NewClient(cfg *config.ImageryConfig, logger *zap.Logger) repository.ImageryMetadataRepository {
	log := logger.With(zap.String("component", serviceName))
	if cfg.APIKey == "" {
		log.Warn("Google Maps API key not configured, Street View metadata unavailable")
	}

	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     log,
	}
}

// GetMetadata ищет панораму по ID, если он задан, иначе ближайшую к точке
func (c *client) GetMetadata(ctx context.Context, coords domain.Coordinates, panoID string) domain.Optional[domain.ImageryMetadata] {
	params := url.Values{}
	if panoID != "" {
		params.Set("pano", panoID)
	} else {
		params.Set("location", fmt.Sprintf("%s,%s",
			strconv.FormatFloat(coords.Lat, 'f', -1, 64),
			strconv.FormatFloat(coords.Lng, 'f', -1, 64)))
	}
	return c.fetch(ctx, params)
}

// ResolvePano нужен, когда клиент прислал только ID панорамы без координат
func (c *client) ResolvePano(ctx context.Context, panoID string) domain.Optional[domain.ImageryMetadata] {
	if panoID == "" {
		return domain.None[domain.ImageryMetadata]()
	}
	md := c.fetch(ctx, url.Values{"pano": []string{panoID}})
	if v, ok := md.Get(); !ok || v.Location == nil {
		return domain.None[domain.ImageryMetadata]()
	}
	return md
}

func (c *client) fetch(ctx context.Context, params url.Values) domain.Optional[domain.ImageryMetadata] {
	if c.apiKey == "" {
		return domain.None[domain.ImageryMetadata]()
	}

	started := time.Now()
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/metadata?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return domain.None[domain.ImageryMetadata]()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(serviceName, metrics.OutcomeError, started)
		c.logger.Error("Failed to execute request", zap.Error(err))
		return domain.None[domain.ImageryMetadata]()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ObserveUpstream(serviceName, metrics.OutcomeError, started)
		c.logger.Error("Street View API returned error", zap.Int("status_code", resp.StatusCode))
		return domain.None[domain.ImageryMetadata]()
	}

	var payload metadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.ObserveUpstream(serviceName, metrics.OutcomeError, started)
		c.logger.Error("Failed to decode response", zap.Error(err))
		return domain.None[domain.ImageryMetadata]()
	}

	// ZERO_RESULTS, NOT_FOUND, REQUEST_DENIED и т.д.
	if payload.Status != statusOK {
		metrics.ObserveUpstream(serviceName, metrics.OutcomeNotFound, started)
		c.logger.Debug("No panorama metadata", zap.String("status", payload.Status))
		return domain.None[domain.ImageryMetadata]()
	}

	metrics.ObserveUpstream(serviceName, metrics.OutcomeSuccess, started)
	return domain.Some(domain.ImageryMetadata{
		PanoID:    payload.PanoID,
		Date:      payload.Date,
		Copyright: payload.Copyright,
		Status:    payload.Status,
		Location:  payload.Location,
	})
}
