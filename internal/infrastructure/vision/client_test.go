package vision

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/panoprobe/internal/config"
	"github.com/panoprobe/internal/domain"
)

func testConfig(url string) *config.VisionConfig {
	return &config.VisionConfig{Enabled: true, URL: url, NumViews: 4, Timeout: 2 * time.Second}
}

var coords = domain.Coordinates{Lat: 51.5007, Lng: -0.1246}

func TestClient_Analyze(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful analysis", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/analyze", r.URL.Path)

			var req analyzeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 51.5007, req.Lat)
			assert.Equal(t, 4, req.NumViews)

			w.Write([]byte(`{
				"clip_analysis": {
					"difficulty": 2,
					"confidence": 0.72,
					"insights": ["Readable English signage", "Famous landmark"],
					"scene_type": "urban",
					"has_text": true,
					"has_landmark": true,
					"is_generic": false,
					"is_urban": true,
					"raw_difficulty_score": 1.8
				},
				"combined_difficulty": 2,
				"method": "clip"
			}`))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		rating, ok := c.Analyze(context.Background(), coords, 4).Get()
		require.True(t, ok)
		assert.Equal(t, 2.0, rating.Difficulty)
		assert.Equal(t, 0.72, rating.Confidence)
		assert.Equal(t, []string{"Readable English signage", "Famous landmark"}, rating.Insights)
		assert.True(t, rating.HasLandmark)
		assert.Equal(t, "urban", rating.SceneType)
	})

	t.Run("no imagery", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		assert.False(t, c.Analyze(context.Background(), coords, 1).IsPresent())
	})

	t.Run("model not loaded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		assert.False(t, c.Analyze(context.Background(), coords, 1).IsPresent())
	})

	t.Run("internal error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		assert.False(t, c.Analyze(context.Background(), coords, 1).IsPresent())
	})

	t.Run("missing payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"method": "clip"}`))
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		assert.False(t, c.Analyze(context.Background(), coords, 1).IsPresent())
	})
}

func TestClient_NotFoundDoesNotTripBreaker(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL), zap.NewNop())

	for i := 0; i < 8; i++ {
		c.Analyze(context.Background(), coords, 1)
	}

	assert.Equal(t, int32(8), atomic.LoadInt32(&calls))
}

func TestClient_BreakerOpensOnFailures(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL), zap.NewNop())

	for i := 0; i < 8; i++ {
		assert.False(t, c.Analyze(context.Background(), coords, 1).IsPresent())
	}

	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.Write([]byte(`{"status": "healthy"}`))
		}))
		defer server.Close()

		assert.True(t, NewClient(testConfig(server.URL), zap.NewNop()).Health(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		assert.False(t, NewClient(testConfig(server.URL), zap.NewNop()).Health(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		assert.False(t, NewClient(testConfig("http://127.0.0.1:1"), zap.NewNop()).Health(context.Background()))
	})
}
