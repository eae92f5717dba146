package overpass

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/serjvanilla/go-overpass"
	"go.uber.org/zap"

	"github.com/panoprobe/internal/config"
	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/domain/repository"
	"github.com/panoprobe/internal/metrics"
)

const (
	serviceName    = "overpass"
	maxParallel    = 2
	initialBackoff = time.Second
)

type mirror struct {
	endpoint string
	client   overpass.Client
}

type client struct {
	mirrors    []mirror
	maxRetries int
	maxBackoff time.Duration
	logger     *zap.Logger
}

// NewClient создает клиент Overpass API с перебором зеркал.
// На каждое зеркало делается до cfg.MaxRetries попыток с экспоненциальной паузой.
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.NearbyFeatureRepository {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	mirrors := make([]mirror, 0, len(cfg.URLs))
	for _, endpoint := range cfg.URLs {
		mirrors = append(mirrors, mirror{
			endpoint: endpoint,
			client:   overpass.NewWithSettings(endpoint, maxParallel, httpClient),
		})
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &client{
		mirrors:    mirrors,
		maxRetries: maxRetries,
		maxBackoff: cfg.MaxBackoff,
		logger:     logger.With(zap.String("component", serviceName)),
	}
}

// GetNearbyFeatures никогда не возвращает ошибку: при отказе всех зеркал
// результат пустой, анализ продолжается без объектов окружения
func (c *client) GetNearbyFeatures(ctx context.Context, coords domain.Coordinates, radiusMeters int) []domain.NearbyElement {
	query := BuildQuery(coords, radiusMeters)
	started := time.Now()

	for i := range c.mirrors {
		m := &c.mirrors[i]

		result, err := c.queryWithRetry(ctx, m, query)
		if err == nil {
			elements := convertElements(&result)
			metrics.ObserveUpstream(serviceName, metrics.OutcomeSuccess, started)
			c.logger.Debug("Overpass query succeeded",
				zap.String("endpoint", m.endpoint),
				zap.Int("elements", len(elements)))
			return elements
		}

		c.logger.Warn("Overpass mirror failed",
			zap.String("endpoint", m.endpoint),
			zap.Error(err))

		if ctx.Err() != nil {
			break
		}
	}

	metrics.ObserveUpstream(serviceName, metrics.OutcomeError, started)
	c.logger.Warn("All Overpass attempts failed, returning empty results",
		zap.Float64("lat", coords.Lat),
		zap.Float64("lng", coords.Lng))
	return []domain.NearbyElement{}
}

func (c *client) queryWithRetry(ctx context.Context, m *mirror, query string) (overpass.Result, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries-1)),
		ctx,
	)

	attempt := 0
	return backoff.RetryNotifyWithData(func() (overpass.Result, error) {
		attempt++
		if err := ctx.Err(); err != nil {
			return overpass.Result{}, backoff.Permanent(err)
		}
		return m.client.Query(query)
	}, policy, func(err error, wait time.Duration) {
		c.logger.Info("Overpass attempt failed, retrying",
			zap.String("endpoint", m.endpoint),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.maxRetries),
			zap.Duration("wait", wait),
			zap.Error(err))
	})
}

func (c *client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialBackoff
	if c.maxBackoff > 0 && c.maxBackoff < b.InitialInterval {
		b.InitialInterval = c.maxBackoff
	}
	b.MaxInterval = c.maxBackoff
	b.MaxElapsedTime = 0
	return b
}

func convertElements(result *overpass.Result) []domain.NearbyElement {
	elements := make([]domain.NearbyElement, 0, len(result.Nodes)+len(result.Ways)+len(result.Relations))

	for _, node := range result.Nodes {
		// узлы без тегов - это вершины линий, а не объекты
		if len(node.Tags) == 0 {
			continue
		}
		elements = append(elements, domain.NearbyElement{
			Type: string(overpass.ElementTypeNode),
			Tags: node.Tags,
		})
	}

	for _, way := range result.Ways {
		elements = append(elements, domain.NearbyElement{
			Type: string(overpass.ElementTypeWay),
			Tags: way.Tags,
		})
	}

	for _, relation := range result.Relations {
		elements = append(elements, domain.NearbyElement{
			Type: string(overpass.ElementTypeRelation),
			Tags: relation.Tags,
		})
	}

	return elements
}
