package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"spa/config"
	"spa/infras/metrics"
	"spa/infras/otel"
	"spa/infras/postgres"
	blockRepo "spa/internal/domains/blockedtime/repository"
	"spa/internal/domains/booking/event"
	"spa/internal/domains/booking/model"
	"spa/internal/domains/booking/model/dto"
	"spa/internal/domains/booking/repository"
	giftRepo "spa/internal/domains/giftcertificate/repository"
	membershipRepo "spa/internal/domains/membership/repository"
	roomRepo "spa/internal/domains/room/repository"
	therapistRepo "spa/internal/domains/therapist/repository"
	treatmentRepo "spa/internal/domains/treatment/repository"
	"spa/internal/scheduling/policy"
	"spa/internal/scheduling/scheduler"
	"spa/shared"
	"spa/shared/cache"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

const (
	operationRequest    = "request"
	operationCancel     = "cancel"
	operationReschedule = "reschedule"
	operationConfirm    = "confirm"
	operationComplete   = "complete"
	operationNoShow     = "no_show"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (dto.CancelBookingResponse, error)
	Reschedule(ctx context.Context, id string, req dto.RescheduleBookingRequest) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string) (dto.BookingResponse, error)
	MarkNoShow(ctx context.Context, id string) (dto.BookingResponse, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

// Repositories groups the storage collaborators a booking decision reads and writes.
type Repositories struct {
	Booking         repository.Booking
	BlockedTime     blockRepo.BlockedTime
	Room            roomRepo.Room
	Therapist       therapistRepo.Therapist
	Treatment       treatmentRepo.Treatment
	Membership      membershipRepo.Membership
	GiftCertificate giftRepo.GiftCertificate
}

type serviceImpl struct {
	repos     Repositories
	tx        postgres.Transactor
	scheduler *scheduler.Scheduler
	policies  policy.Provider
	events    event.Publisher
	metrics   metrics.Metrics
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repos Repositories,
	tx postgres.Transactor,
	scheduler *scheduler.Scheduler,
	policies policy.Provider,
	events event.Publisher,
	metrics metrics.Metrics,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repos:     repos,
		tx:        tx,
		scheduler: scheduler,
		policies:  policies,
		events:    events,
		metrics:   metrics,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repos.Booking.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repos.Booking.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repos.Booking.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// invalidate drops every cached read that may include booking id.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// record counts a decision. Rejections are labelled with their reason code; anything that
// is not a failure counts as an error.
func (s *serviceImpl) record(operation string, err error) {
	switch {
	case err == nil:
		s.metrics.RecordDecision(operation, metrics.OutcomeAccepted, constant.Empty)
	case failure.GetKind(err) == failure.KindInternal:
		s.metrics.RecordDecision(operation, metrics.OutcomeError, constant.Empty)
	default:
		s.metrics.RecordDecision(operation, metrics.OutcomeRejected, failure.GetReason(err))
	}
}
