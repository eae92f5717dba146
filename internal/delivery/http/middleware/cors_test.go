package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corsApp(t *testing.T, origins []string) *fiber.App {
	t.Helper()

	app := fiber.New()
	require.NotPanics(t, func() { app.Use(CORS(origins)) })
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestCORS_ExplicitOrigins(t *testing.T) {
	app := corsApp(t, []string{"http://localhost:3000"})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
}

func TestCORS_WildcardDisablesCredentials(t *testing.T) {
	for _, origins := range [][]string{{"*"}, nil} {
		app := corsApp(t, origins)

		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(fiber.HeaderOrigin, "http://example.com")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
		assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
	}
}

func TestHasWildcard(t *testing.T) {
	assert.True(t, hasWildcard(nil))
	assert.True(t, hasWildcard([]string{"http://a.test", "*"}))
	assert.False(t, hasWildcard([]string{"http://a.test"}))
}
