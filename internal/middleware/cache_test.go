package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/task-tracker/internal/config"
)

// Without a Redis client the middleware must be a transparent no-op.
func TestTaskListCache_DisabledWithoutRedis(t *testing.T) {
	t.Parallel()

	mw := TaskListCache(config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "tasks"}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.JSON(http.StatusOK, []string{})
	})
	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestTaskListCache_DisabledByConfig(t *testing.T) {
	t.Parallel()

	mw := TaskListCache(config.CacheConfig{Enabled: false}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	assert.True(t, called)
}
