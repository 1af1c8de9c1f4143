package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purplefit/purplefit-v2/backend/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerPort:           "0",
		StoreBackend:         config.StoreBackendFile,
		DataDir:              t.TempDir(),
		JWTSecret:            "test-secret",
		OperatorEmail:        "coach@purplefit.test",
		OperatorPasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
}

func TestNewSeedsStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)

	ctx := context.Background()
	assert.NotEmpty(t, srv.Foods.List(ctx), "catalog is seeded at boot")
	assert.Len(t, srv.Plans.List(ctx), 1, "sample plan is seeded at boot")
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestStartStopsCleanlyOnContextCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	srv, err := New(ctx, testConfig(t))
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	// Shutting down must not surface http.ErrServerClosed as a failure.
	assert.NoError(t, <-errCh)
}

func TestProtectedRouteRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/meal-plans", nil)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
