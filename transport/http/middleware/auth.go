package middleware

import (
	"context"
	"net/http"
	"spa/config"
	"spa/infras/otel"
	"spa/shared/constant"
	"spa/shared/failure"
	"spa/transport/http/response"
)

// Access guards the booking API for front-desk and internal callers.
type Access interface {
	APIKey(next http.Handler) http.Handler
	Actor(next http.Handler) http.Handler
}

type accessImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAccessMiddleware(otel otel.Otel, cfg *config.Config) Access {
	return &accessImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey rejects requests whose X-API-Key does not match the configured key.
// An empty configured key disables the check.
func (m *accessImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.cfg.App.APIKey == constant.Empty {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == constant.Empty {
			err := failure.Unauthorized("missing api key")

			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		if apiKey != m.cfg.App.APIKey {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// Actor stores X-Actor-ID in the request context for audit fields.
func (m *accessImpl) Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		actor := request.Header.Get(constant.RequestHeaderActorID)
		if actor == constant.Empty {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := context.WithValue(request.Context(), constant.ContextKeyActorID, actor)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
