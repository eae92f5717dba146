package postgresosm

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/panoprobe/internal/domain"
	"github.com/panoprobe/internal/domain/repository"
	"github.com/panoprobe/internal/metrics"
)

const serviceName = "osm_db"

type nearbyRepository struct {
	db     *sqlx.DB
	query  string
	logger *zap.Logger
}

// NewNearbyRepository создает источник объектов окружения поверх локальной
// OSM базы (osm2pgsql). Выборка повторяет запрос к Overpass.
func NewNearbyRepository(db *DB) repository.NearbyFeatureRepository {
	return &nearbyRepository{
		db:     db.DB,
		query:  buildNearbyQuery(),
		logger: db.logger,
	}
}

// GetNearbyFeatures при ошибке БД возвращает пустой список
func (r *nearbyRepository) GetNearbyFeatures(ctx context.Context, coords domain.Coordinates, radiusMeters int) []domain.NearbyElement {
	started := time.Now()

	rows, err := r.db.QueryxContext(ctx, r.query,
		coords.Lng, coords.Lat, radiusMeters,
		pq.Array(keyAmenityTypes),
		pq.Array(naturalLandmarks),
		pq.Array(majorHighwayClasses),
		LimitNearbyFeatures,
	)
	if err != nil {
		metrics.ObserveUpstream(serviceName, metrics.OutcomeError, started)
		r.logger.Error("failed to query nearby osm features", zap.Error(err))
		return []domain.NearbyElement{}
	}
	defer rows.Close()

	elements := make([]domain.NearbyElement, 0)
	for rows.Next() {
		var row nearbyRow
		if err := rows.StructScan(&row); err != nil {
			r.logger.Error("failed to scan nearby feature row", zap.Error(err))
			continue
		}
		elements = append(elements, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("nearby features iteration failed", zap.Error(err))
	}

	metrics.ObserveUpstream(serviceName, metrics.OutcomeSuccess, started)
	return elements
}
