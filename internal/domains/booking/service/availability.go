package service

import (
	"context"
	"fmt"
	blockRepo "spa/internal/domains/blockedtime/repository"
	"spa/internal/domains/booking/model/dto"
	"spa/internal/scheduling/availability"
	"spa/shared/constant"
	"spa/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// Availability lists the free windows of one therapist or room on a date, inside the
// business hours of the location's policy.
func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := req.Day()
	if err != nil {
		return res, err
	}

	cfg := s.policies.ForLocation(req.LocationID)
	open := timezone.NewInterval(
		day.Add(time.Duration(cfg.OpeningHour)*time.Hour),
		day.Add(time.Duration(cfg.ClosingHour)*time.Hour),
	)
	resources := req.Resources()

	bookings, err := s.repos.Booking.FindOverlapping(ctx, open, resources)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for availability")

		return res, fmt.Errorf("failed to load bookings for availability: %w", err)
	}

	blocks, err := s.repos.BlockedTime.FindForResources(ctx, blockRepo.ResourceQuery{
		From:        open.Start,
		To:          open.End,
		TherapistID: resources.TherapistID,
		RoomID:      resources.RoomID,
		LocationID:  req.LocationID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to load blocked times for availability")

		return res, fmt.Errorf("failed to load blocked times for availability: %w", err)
	}

	windows := availability.FreeWindows(open, availability.ResourceType(req.ResourceType), req.ResourceID, bookings, blocks)

	res.FromWindows(req, windows)

	return res, nil
}
