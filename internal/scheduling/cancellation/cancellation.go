// Package cancellation owns the booking state machine and decides the money outcome of a
// cancellation. Refunds themselves are executed by the billing side.
package cancellation

import (
	"fmt"
	bookingModel "spa/internal/domains/booking/model"
	"spa/internal/scheduling/policy"
	"spa/internal/scheduling/pricing"
	"spa/internal/scheduling/validation"
	"spa/shared/failure"
	"spa/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

// Outcome is what billing needs to settle a cancelled booking.
type Outcome struct {
	BookingID       string          `json:"booking_id"`
	HoursUntilStart float64         `json:"hours_until_start"`
	Late            bool            `json:"late"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"` // captured deposit
	Fee             decimal.Decimal `json:"fee"`
	Refund          decimal.Decimal `json:"refund"`
	CancelledAt     time.Time       `json:"cancelled_at"`
	Reason          string          `json:"reason"`
}

// Cancel moves the booking to cancelled and computes the fee and refund. A cancellation at
// least CancellationWindowHours before start refunds the whole captured deposit; a later one
// keeps deposit × LateCancellationFeePercentage. A pending booking has captured nothing, so
// both amounts are zero.
func Cancel(booking *bookingModel.Booking, reason string, cfg policy.Config, now time.Time) (Outcome, error) {
	if !CanTransition(booking.Status, bookingModel.StatusCancelled) {
		return Outcome{}, transition(booking, bookingModel.StatusCancelled)
	}

	now = timezone.ToUTC(now)
	hours := timezone.HoursBetween(now, booking.StartTime)
	deposit := capturedDeposit(booking)

	outcome := Outcome{
		BookingID:       booking.ID,
		HoursUntilStart: hours,
		DepositAmount:   deposit,
		Fee:             decimal.Zero,
		Refund:          deposit,
		CancelledAt:     now,
		Reason:          reason,
	}

	if hours < float64(cfg.CancellationWindowHours) {
		fee := deposit.Mul(cfg.LateCancellationFeePercentage).Round(pricing.CurrencyPlaces)

		outcome.Late = true
		outcome.Fee = fee
		outcome.Refund = deposit.Sub(fee)
	}

	if outcome.Fee.IsNegative() || outcome.Refund.IsNegative() {
		return Outcome{}, failure.InvariantViolation( // nolint:wrapcheck
			failure.ReasonNegativeAmount,
			fmt.Sprintf("cancellation of booking %s yields a negative fee or refund", booking.ID),
		)
	}

	if err := transition(booking, bookingModel.StatusCancelled); err != nil {
		return Outcome{}, err
	}

	booking.CancelledAt = &now
	booking.CancellationReason = reason

	return outcome, nil
}

func capturedDeposit(booking *bookingModel.Booking) decimal.Decimal {
	if booking.Status == bookingModel.StatusPending {
		return decimal.Zero
	}

	return booking.DepositAmount
}

// Reschedule moves a pending or confirmed booking to a new interval. The slot checks run
// against in with the booking itself excluded; on any rejection the booking is unchanged.
func Reschedule(booking *bookingModel.Booking, interval timezone.Interval, reason string, in validation.Input) error {
	if booking.Status != bookingModel.StatusPending && booking.Status != bookingModel.StatusConfirmed {
		return failure.ConflictWithReason( // nolint:wrapcheck
			failure.ReasonInvalidTransition,
			fmt.Sprintf("a %s booking cannot be rescheduled", booking.Status),
		)
	}

	in.ExcludeBookingID = booking.ID

	req := validation.Request{
		ClientID:   booking.ClientID,
		ServiceID:  booking.ServiceID,
		Resources:  booking.Resources(),
		LocationID: booking.LocationID,
		Start:      interval.Start,
		End:        interval.End,
	}

	if err := validation.ValidateSlot(req, in); err != nil {
		return err
	}

	utc := interval.UTC()
	booking.StartTime = utc.Start
	booking.EndTime = utc.End
	booking.RescheduleReason = reason

	return nil
}
