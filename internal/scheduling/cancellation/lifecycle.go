package cancellation

import (
	"fmt"
	"slices"
	bookingModel "spa/internal/domains/booking/model"
	"spa/shared/failure"
	"spa/shared/timezone"
	"time"
)

var transitions = map[bookingModel.Status][]bookingModel.Status{
	bookingModel.StatusPending:   {bookingModel.StatusConfirmed, bookingModel.StatusCancelled},
	bookingModel.StatusConfirmed: {bookingModel.StatusCancelled, bookingModel.StatusCompleted, bookingModel.StatusNoShow},
	bookingModel.StatusCancelled: {},
	bookingModel.StatusCompleted: {},
	bookingModel.StatusNoShow:    {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to bookingModel.Status) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}

	return slices.Contains(allowed, to)
}

// IsTerminal reports whether no further transition is possible from status.
func IsTerminal(status bookingModel.Status) bool {
	return len(transitions[status]) == 0
}

func transition(booking *bookingModel.Booking, to bookingModel.Status) error {
	if !CanTransition(booking.Status, to) {
		return failure.ConflictWithReason( // nolint:wrapcheck
			failure.ReasonInvalidTransition,
			fmt.Sprintf("booking cannot move from %s to %s", booking.Status, to),
		)
	}

	booking.Status = to

	return nil
}

// Confirm records an external payment confirmation on a pending booking.
func Confirm(booking *bookingModel.Booking, paymentReference string) error {
	if err := transition(booking, bookingModel.StatusConfirmed); err != nil {
		return err
	}

	booking.PaymentReference = paymentReference

	return nil
}

// Complete marks a confirmed booking as served. The appointment must have started.
func Complete(booking *bookingModel.Booking, now time.Time) error {
	return closeAppointment(booking, bookingModel.StatusCompleted, now)
}

// MarkNoShow marks a confirmed booking whose client never arrived.
func MarkNoShow(booking *bookingModel.Booking, now time.Time) error {
	return closeAppointment(booking, bookingModel.StatusNoShow, now)
}

func closeAppointment(booking *bookingModel.Booking, to bookingModel.Status, now time.Time) error {
	if !CanTransition(booking.Status, to) {
		return transition(booking, to)
	}

	if timezone.IsFuture(booking.StartTime, now) {
		return failure.Validation( // nolint:wrapcheck
			failure.ReasonNotStarted,
			fmt.Sprintf("booking cannot be marked %s before it starts", to),
		)
	}

	return transition(booking, to)
}
