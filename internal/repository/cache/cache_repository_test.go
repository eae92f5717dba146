package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/panoprobe/internal/config"
	"github.com/panoprobe/internal/domain"
	apperrors "github.com/panoprobe/internal/pkg/errors"
)

// getTestRedis подключается к локальному Redis (DB 1) или пропускает тест
func getTestRedis(t *testing.T) *Redis {
	r, err := NewRedis(&config.RedisConfig{Host: "localhost", Port: 6379, DB: 1}, zap.NewNop())
	if err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	return r
}

func TestCacheRepository_Integration(t *testing.T) {
	r := getTestRedis(t)
	defer r.Close()

	repo := NewCacheRepository(r)
	ctx := context.Background()
	key := "test:cache:place:1.0000:2.0000"
	defer repo.Delete(ctx, key)

	val, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val, "miss must be (nil, nil)")

	require.NoError(t, repo.Set(ctx, key, []byte(`{"address":{}}`), time.Minute))

	exists, err := repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"address":{}}`, string(val))

	require.NoError(t, repo.Delete(ctx, key))
	exists, err = repo.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCacheRepository_TypedHelpers_Integration(t *testing.T) {
	r := getTestRedis(t)
	defer r.Close()

	repo := NewCacheRepository(r)
	ctx := context.Background()
	coords := domain.Coordinates{Lat: 35.6895, Lng: 139.6917}
	defer func() {
		repo.Delete(ctx, PlaceKey(coords))
		repo.Delete(ctx, NearbyKey(coords, 500))
		repo.Delete(ctx, ImageryKey(coords, "test-pano"))
	}()

	place, err := repo.GetPlace(ctx, coords)
	require.NoError(t, err)
	assert.Nil(t, place)

	require.NoError(t, repo.SetPlace(ctx, coords, &domain.PlaceLookup{
		Address: domain.PlaceAddress{City: "Tokyo", CountryCode: "jp"},
	}, time.Minute))
	place, err = repo.GetPlace(ctx, coords)
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "Tokyo", place.Address.City)

	elements := []domain.NearbyElement{{Type: "node", Tags: map[string]string{"amenity": "cafe"}}}
	require.NoError(t, repo.SetNearby(ctx, coords, 500, elements, time.Minute))
	got, err := repo.GetNearby(ctx, coords, 500)
	require.NoError(t, err)
	assert.Equal(t, elements, got)

	md := domain.ImageryMetadata{PanoID: "test-pano", Date: "2012-05", Status: "OK", Location: &coords}
	require.NoError(t, repo.SetImagery(ctx, coords, "test-pano", md, time.Minute))
	cachedMD, err := repo.GetImagery(ctx, domain.Coordinates{}, "test-pano")
	require.NoError(t, err)
	require.NotNil(t, cachedMD)
	assert.Equal(t, "2012-05", cachedMD.Date)
}

func TestCacheRepository_CorruptedEntry_Integration(t *testing.T) {
	r := getTestRedis(t)
	defer r.Close()

	repo := NewCacheRepository(r)
	ctx := context.Background()
	coords := domain.Coordinates{Lat: 1, Lng: 2}
	key := PlaceKey(coords)
	defer repo.Delete(ctx, key)

	require.NoError(t, repo.Set(ctx, key, []byte("{not json"), time.Minute))

	place, err := repo.GetPlace(ctx, coords)
	assert.Nil(t, place)
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, apperrors.ErrCacheError.Code, appErr.Code)
	assert.Equal(t, key, appErr.Details["key"])
}
