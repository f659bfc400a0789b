package service

import (
	"context"
	"fmt"
	"spa/internal/domains/booking/model"
	"spa/internal/domains/booking/model/dto"
	"spa/internal/scheduling/cancellation"
	"spa/internal/scheduling/validation"
	"spa/shared"
	"spa/shared/constant"
	"spa/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	defer func() { s.record(operationCancel, err) }()

	actor := shared.ActorFromContext(ctx)

	var (
		cancelled model.Booking
		outcome   cancellation.Outcome
	)

	err = s.withSerializableRetry(ctx, operationCancel, func(tx *sqlx.Tx) error {
		booking, err := s.getBookingTx(ctx, tx, id)
		if err != nil {
			return err
		}

		cfg := s.policies.ForLocation(booking.LocationID)

		cancelled, outcome, err = s.scheduler.CancelBooking(booking, cfg, req.Reason)
		if err != nil {
			return err
		}

		return s.updateBookingTx(ctx, tx, id, actor, map[string]any{
			model.FieldStatus:             cancelled.Status,
			model.FieldCancelledAt:        cancelled.CancelledAt,
			model.FieldCancellationReason: cancelled.CancellationReason,
		})
	})
	if err != nil {
		return res, err
	}

	log.Info().
		Str("booking_id", id).
		Bool("late", outcome.Late).
		Str("fee", outcome.Fee.StringFixed(2)).
		Str("refund", outcome.Refund.StringFixed(2)).
		Msg("booking cancelled")

	if err := s.events.Cancelled(ctx, cancelled, outcome); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to publish booking cancelled event")
	}

	s.invalidate(ctx, id)

	res.FromOutcome(cancelled, outcome)

	return res, nil
}

func (s *serviceImpl) Reschedule(ctx context.Context, id string, req dto.RescheduleBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	defer func() { s.record(operationReschedule, err) }()

	interval, err := req.ToInterval()
	if err != nil {
		return res, err
	}

	current, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	moveReq := validation.Request{Start: interval.Start, End: interval.End}
	if err = validation.CheckStructure(moveReq, s.policies.ForLocation(current.LocationID)); err != nil {
		return res, err
	}

	release, err := s.acquire(ctx, lockKeys(current.Resources(), interval))
	if err != nil {
		return res, err
	}
	defer release()

	actor := shared.ActorFromContext(ctx)

	var previous, moved model.Booking

	err = s.withSerializableRetry(ctx, operationReschedule, func(tx *sqlx.Tx) error {
		booking, err := s.getBookingTx(ctx, tx, id)
		if err != nil {
			return err
		}

		previous = booking
		cfg := s.policies.ForLocation(booking.LocationID)

		snapshot, err := s.loadSnapshot(ctx, tx, slot{
			serviceID:  booking.ServiceID,
			resources:  booking.Resources(),
			locationID: booking.LocationID,
			interval:   interval,
		}, cfg)
		if err != nil {
			return err
		}

		moved, err = s.scheduler.RescheduleBooking(snapshot, booking, interval, req.Reason)
		if err != nil {
			return err
		}

		return s.updateBookingTx(ctx, tx, id, actor, map[string]any{
			model.FieldStartTime:        moved.StartTime,
			model.FieldEndTime:          moved.EndTime,
			model.FieldRescheduleReason: moved.RescheduleReason,
		})
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("booking_id", id).Time("start_time", moved.StartTime).Msg("booking rescheduled")

	if err := s.events.Rescheduled(ctx, moved, previous.StartTime, previous.EndTime); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to publish booking rescheduled event")
	}

	s.invalidate(ctx, id)

	res.FromModel(moved)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string, req dto.ConfirmBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.changeStatus(ctx, id, operationConfirm, func(booking model.Booking) (model.Booking, error) {
		return s.scheduler.ConfirmBooking(booking, req.PaymentReference)
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.changeStatus(ctx, id, operationComplete, s.scheduler.CompleteBooking)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) MarkNoShow(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.changeStatus(ctx, id, operationNoShow, s.scheduler.MarkNoShow)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// changeStatus loads the booking, applies a state machine step and stores the new status.
func (s *serviceImpl) changeStatus(
	ctx context.Context,
	id, operation string,
	apply func(model.Booking) (model.Booking, error),
) (updated model.Booking, err error) {
	defer func() { s.record(operation, err) }()

	actor := shared.ActorFromContext(ctx)

	var from model.Status

	err = s.withSerializableRetry(ctx, operation, func(tx *sqlx.Tx) error {
		booking, err := s.getBookingTx(ctx, tx, id)
		if err != nil {
			return err
		}

		from = booking.Status

		updated, err = apply(booking)
		if err != nil {
			return err
		}

		return s.updateBookingTx(ctx, tx, id, actor, map[string]any{
			model.FieldStatus:           updated.Status,
			model.FieldPaymentReference: updated.PaymentReference,
		})
	})
	if err != nil {
		return updated, err
	}

	log.Info().Str("booking_id", id).Str("from", string(from)).Str("to", string(updated.Status)).Msg("booking status changed")

	if err := s.events.StatusChanged(ctx, updated, from); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to publish booking status changed event")
	}

	s.invalidate(ctx, id)

	return updated, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repos.Booking.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) getBookingTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	booking, err := s.repos.Booking.GetTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) updateBookingTx(ctx context.Context, tx *sqlx.Tx, id, actor string, fields map[string]any) error {
	err := s.repos.Booking.UpdateTx(ctx, tx, changes(s.scheduler.Now(), actor, fields), shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}
