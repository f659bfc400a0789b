package service

import (
	"context"
	"fmt"
	"spa/infras/postgres"
	"spa/internal/domains/booking/model/dto"
	giftModel "spa/internal/domains/giftcertificate/model"
	membershipModel "spa/internal/domains/membership/model"
	"spa/internal/scheduling/scheduler"
	"spa/internal/scheduling/validation"
	"spa/shared"
	"spa/shared/constant"
	"spa/shared/failure"
	gModel "spa/shared/model"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// maxConcurrentWriteRetries is how many times a decision is re-run from a fresh snapshot
// after the database reports a concurrent winner.
const maxConcurrentWriteRetries = 1

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	defer s.metrics.ObserveDuration(operationRequest, time.Now())
	defer func() { s.record(operationRequest, err) }()

	bookingReq, err := req.ToRequest()
	if err != nil {
		return res, err
	}

	cfg := s.policies.ForLocation(bookingReq.LocationID)

	if err = validation.CheckStructure(bookingReq, cfg); err != nil {
		return res, err
	}

	release, err := s.acquire(ctx, lockKeys(bookingReq.Resources, bookingReq.Interval()))
	if err != nil {
		return res, err
	}
	defer release()

	actor := shared.ActorFromContext(ctx)

	var outcome scheduler.Outcome

	err = s.withSerializableRetry(ctx, operationRequest, func(tx *sqlx.Tx) error {
		snapshot, err := s.loadSnapshot(ctx, tx, slot{
			serviceID:  bookingReq.ServiceID,
			resources:  bookingReq.Resources,
			locationID: bookingReq.LocationID,
			interval:   bookingReq.Interval(),
		}, cfg)
		if err != nil {
			return err
		}

		snapshot.Treatment, err = s.loadTreatment(ctx, tx, bookingReq.ServiceID)
		if err != nil {
			return err
		}

		if bookingReq.UseMembershipCredits {
			if snapshot.Membership, err = s.loadMembership(ctx, tx, bookingReq.ClientID); err != nil {
				return err
			}
		}

		if bookingReq.GiftCertificateCode != nil && *bookingReq.GiftCertificateCode != constant.Empty {
			if snapshot.GiftCertificate, err = s.loadGiftCertificate(ctx, tx, *bookingReq.GiftCertificateCode); err != nil {
				return err
			}
		}

		outcome, err = s.scheduler.RequestBooking(snapshot, bookingReq)
		if err != nil {
			return err
		}

		return s.persistOutcome(ctx, tx, &outcome, actor)
	})
	if err != nil {
		return res, err
	}

	log.Info().
		Str("booking_id", outcome.Booking.ID).
		Str("status", string(outcome.Booking.Status)).
		Str("deposit", outcome.Booking.DepositAmount.StringFixed(2)).
		Msg("booking created")

	if err := s.events.Created(ctx, outcome.Booking); err != nil {
		log.Error().Err(err).Str("booking_id", outcome.Booking.ID).Msg("failed to publish booking created event")
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(outcome.Booking)

	return res, nil
}

// persistOutcome writes the accepted booking and the balances it drew down.
func (s *serviceImpl) persistOutcome(ctx context.Context, tx *sqlx.Tx, outcome *scheduler.Outcome, actor string) error {
	now := s.scheduler.Now()

	outcome.Booking.Metadata = gModel.NewMetadata(now, actor)

	if err := s.repos.Booking.InsertTx(ctx, tx, outcome.Booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if membership := outcome.Membership; membership != nil {
		err := s.repos.Membership.UpdateTx(ctx, tx, changes(now, actor, map[string]any{
			membershipModel.FieldCurrentCredits: membership.CurrentCredits,
		}), shared.FilterByID(membership.ID, membershipModel.FieldID, membershipModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to debit membership credits")

			return fmt.Errorf("failed to debit membership credits: %w", err)
		}
	}

	if cert := outcome.GiftCertificate; cert != nil {
		err := s.repos.GiftCertificate.UpdateTx(ctx, tx, changes(now, actor, map[string]any{
			giftModel.FieldRemainingBalance: cert.RemainingBalance,
			giftModel.FieldStatus:           cert.Status,
		}), shared.FilterByID(cert.ID, giftModel.FieldID, giftModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to redeem gift certificate")

			return fmt.Errorf("failed to redeem gift certificate: %w", err)
		}
	}

	return nil
}

// withSerializableRetry runs fn in a serializable transaction. When a concurrent writer
// wins, fn is re-run once from scratch so the decision sees the winner's booking; a second
// loss is reported as a conflict.
func (s *serviceImpl) withSerializableRetry(ctx context.Context, operation string, fn func(tx *sqlx.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := s.tx.WithTransaction(ctx, postgres.Serializable(), fn)

		switch {
		case err == nil:
			return nil
		case !postgres.IsConcurrentWrite(err):
			if failure.GetKind(err) != failure.KindInternal {
				return err
			}

			log.Error().Err(err).Str("operation", operation).Msg("booking transaction failed")

			return fmt.Errorf("failed to %s booking: %w", operation, err)
		case attempt >= maxConcurrentWriteRetries:
			log.Warn().Err(err).Str("operation", operation).Msg("lost concurrent booking race twice")

			return failure.ConflictWithReason( // nolint:wrapcheck
				failure.ReasonConcurrentBooking,
				"the slot was taken by a concurrent booking",
			)
		}

		s.metrics.RecordRetry(operation)
		log.Warn().Err(err).Str("operation", operation).Int("attempt", attempt+1).Msg("concurrent write detected, retrying")
	}
}

func changes(now time.Time, actor string, fields map[string]any) map[string]any {
	fields[constant.FieldModifiedAt] = now
	fields[constant.FieldModifiedBy] = actor

	return fields
}
