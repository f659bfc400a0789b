package service

import (
	"context"
	"fmt"
	blockRepo "spa/internal/domains/blockedtime/repository"
	"spa/internal/domains/booking/model"
	giftModel "spa/internal/domains/giftcertificate/model"
	membershipModel "spa/internal/domains/membership/model"
	treatmentModel "spa/internal/domains/treatment/model"
	"spa/internal/scheduling/policy"
	"spa/internal/scheduling/scheduler"
	"spa/shared"
	"spa/shared/constant"
	"spa/shared/failure"
	"spa/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// slot describes what a snapshot must cover: the resources, the window and the service.
type slot struct {
	serviceID  string
	resources  model.Resources
	locationID *string
	interval   timezone.Interval
}

// loadSnapshot reads, inside tx, every reservation and capability the validator needs for
// slot. An invalid interval loads nothing; the validator rejects it on its own.
func (s *serviceImpl) loadSnapshot(ctx context.Context, tx *sqlx.Tx, slot slot, cfg policy.Config) (scheduler.Snapshot, error) {
	snapshot := scheduler.Snapshot{Policy: cfg}

	interval := slot.interval.UTC()
	if !interval.Valid() {
		return snapshot, nil
	}

	bookings, err := s.repos.Booking.FindOverlappingTx(ctx, tx, interval, slot.resources)
	if err != nil {
		log.Error().Err(err).Msg("failed to load overlapping bookings")

		return snapshot, fmt.Errorf("failed to load overlapping bookings: %w", err)
	}

	blocks, err := s.repos.BlockedTime.FindForResourcesTx(ctx, tx, blockRepo.ResourceQuery{
		From:        interval.Start,
		To:          interval.End,
		TherapistID: slot.resources.TherapistID,
		RoomID:      slot.resources.RoomID,
		LocationID:  slot.locationID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to load blocked times")

		return snapshot, fmt.Errorf("failed to load blocked times: %w", err)
	}

	snapshot.Bookings = bookings
	snapshot.Blocks = blocks

	if slot.resources.HasRoom() {
		snapshot.RoomCapabilities, err = s.repos.Room.GetCapabilitiesTx(ctx, tx, slot.resources.Room(), slot.serviceID)
		if err != nil {
			log.Error().Err(err).Msg("failed to load room capabilities")

			return snapshot, fmt.Errorf("failed to load room capabilities: %w", err)
		}
	}

	if slot.resources.HasTherapist() {
		snapshot.Qualifications, err = s.repos.Therapist.GetQualificationsTx(ctx, tx, slot.resources.Therapist(), slot.serviceID)
		if err != nil {
			log.Error().Err(err).Msg("failed to load therapist qualifications")

			return snapshot, fmt.Errorf("failed to load therapist qualifications: %w", err)
		}
	}

	return snapshot, nil
}

func (s *serviceImpl) loadTreatment(ctx context.Context, tx *sqlx.Tx, serviceID string) (treatmentModel.Treatment, error) {
	treatment, err := s.repos.Treatment.GetTx(ctx, tx, shared.FilterByID(serviceID, treatmentModel.FieldID, treatmentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get treatment")

		return treatment, fmt.Errorf("failed to get treatment: %w", err)
	}

	if treatment.ID == constant.Empty || !treatment.Active {
		return treatment, failure.NotFound("service not found") // nolint:wrapcheck
	}

	return treatment, nil
}

// loadMembership returns the client's membership, or nil when the client has none.
func (s *serviceImpl) loadMembership(ctx context.Context, tx *sqlx.Tx, clientID string) (*membershipModel.Membership, error) {
	membership, err := s.repos.Membership.GetTx(
		ctx, tx, shared.FilterByID(clientID, membershipModel.FieldClientID, membershipModel.TableName),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get membership")

		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	if membership.ID == constant.Empty {
		return nil, nil
	}

	return &membership, nil
}

// loadGiftCertificate returns the certificate with code, or nil when none exists.
func (s *serviceImpl) loadGiftCertificate(ctx context.Context, tx *sqlx.Tx, code string) (*giftModel.GiftCertificate, error) {
	cert, err := s.repos.GiftCertificate.GetTx(ctx, tx, shared.FilterByID(code, giftModel.FieldCode, giftModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gift certificate")

		return nil, fmt.Errorf("failed to get gift certificate: %w", err)
	}

	if cert.ID == constant.Empty {
		return nil, nil
	}

	return &cert, nil
}
