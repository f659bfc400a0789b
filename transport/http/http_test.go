package http_test

import (
	"net/http"
	"net/http/httptest"
	"spa/config"
	"spa/infras/metrics"
	"spa/infras/otel/mocks"
	"spa/shared/cache"
	"spa/shared/constant"
	transport "spa/transport/http"
	"spa/transport/http/middleware"
	"spa/transport/http/router"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "spa-booking"
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	mr := miniredis.RunT(t)
	redisCache := cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), mocks.NewOtel())

	return transport.New(
		cfg,
		router.New(router.DomainHandlers{}),
		middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache),
		middleware.NewAccessMiddleware(mocks.NewOtel(), cfg),
		metrics.New(cfg),
	)
}

func TestServeHTTP(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "health", target: "/health", wantStatus: http.StatusOK},
		{name: "metrics", target: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown route", target: "/v1/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
		})
	}
}

func TestHealthDuringShutdown(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	server.State = transport.ServerStateInGracePeriod

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
