//go:build wireinject
// +build wireinject

package di

import (
	"spa/config"
	"spa/infras/kafka"
	"spa/infras/metrics"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/infras/redis"
	"spa/shared/cache"
	"spa/transport/http"
	"spa/transport/http/middleware"
	"spa/transport/http/router"

	blockedTimeRepository "spa/internal/domains/blockedtime/repository"
	blockedTimeService "spa/internal/domains/blockedtime/service"
	blockedTimeHandler "spa/internal/handlers/blockedtime"

	bookingEvent "spa/internal/domains/booking/event"
	bookingRepository "spa/internal/domains/booking/repository"
	bookingService "spa/internal/domains/booking/service"
	bookingHandler "spa/internal/handlers/booking"

	roomRepository "spa/internal/domains/room/repository"
	roomService "spa/internal/domains/room/service"
	roomHandler "spa/internal/handlers/room"

	giftCertificateRepository "spa/internal/domains/giftcertificate/repository"
	membershipRepository "spa/internal/domains/membership/repository"
	therapistRepository "spa/internal/domains/therapist/repository"
	treatmentRepository "spa/internal/domains/treatment/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	kafka.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAccessMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var scheduling = wire.NewSet(
	provideScheduler,
	providePolicies,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var blockedTimeDomain = wire.NewSet(
	blockedTimeRepository.New,
	blockedTimeService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	therapistRepository.New,
	treatmentRepository.New,
	membershipRepository.New,
	giftCertificateRepository.New,
	bookingEvent.New,
	wire.Struct(new(bookingService.Repositories), "*"),
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	blockedTimeDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	roomHandler.New,
	blockedTimeHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		scheduling,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
