package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"spa/config"
	"spa/infras/otel/mocks"
	"spa/shared"
	"spa/shared/cache"
	"spa/shared/constant"
	"spa/transport/http/middleware"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func echoActor(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Seen-Actor", shared.ActorFromContext(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
	}{
		{name: "disabled when no key is configured", configured: "", sent: "", wantStatus: http.StatusNoContent},
		{name: "matching key", configured: "s3cret", sent: "s3cret", wantStatus: http.StatusNoContent},
		{name: "missing key", configured: "s3cret", sent: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", configured: "s3cret", sent: "guess", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			recorder := mocks.NewRecorder()
			access := middleware.NewAccessMiddleware(recorder, cfg)

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			if tt.sent != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.sent)
			}

			rec := httptest.NewRecorder()
			access.APIKey(http.HandlerFunc(echoActor)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus != http.StatusNoContent, len(recorder.Errors()) == 1)
		})
	}
}

func TestActor(t *testing.T) {
	access := middleware.NewAccessMiddleware(mocks.NewOtel(), &config.Config{})
	handler := access.Actor(http.HandlerFunc(echoActor))

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	req.Header.Set(constant.RequestHeaderActorID, "front-desk-7")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "front-desk-7", rec.Header().Get("X-Seen-Actor"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))
	assert.Equal(t, constant.ContextSystem, rec.Header().Get("X-Seen-Actor"))
}

func newAppMiddleware(t *testing.T, cfg *config.Config) middleware.AppMiddleware {
	t.Helper()

	mr := miniredis.RunT(t)
	redisCache := cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), mocks.NewOtel())

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache)
}

func TestRequestID(t *testing.T) {
	app := newAppMiddleware(t, &config.Config{})

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "req-42")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	handler := newAppMiddleware(t, cfg).RateLimit()(http.HandlerFunc(echoActor))

	codes := make([]int, 0, 3)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/availability", nil)
		req.Header.Set(constant.RequestHeaderRealIP, "10.0.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_CountsActorsSeparately(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	handler := newAppMiddleware(t, cfg).RateLimit()(http.HandlerFunc(echoActor))

	send := func(actor string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")
		req.Header.Set(constant.RequestHeaderActorID, actor)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec
	}

	assert.Equal(t, http.StatusNoContent, send("desk-1").Code)
	assert.Equal(t, http.StatusNoContent, send("desk-2").Code)

	limited := send("desk-1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))
}
