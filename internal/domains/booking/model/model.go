package model

import (
	"spa/shared/model"
	"spa/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                    = "id"
	FieldClientID              = "client_id"
	FieldServiceID             = "service_id"
	FieldTherapistID           = "therapist_id"
	FieldRoomID                = "room_id"
	FieldLocationID            = "location_id"
	FieldStatus                = "status"
	FieldStartTime             = "start_time"
	FieldEndTime               = "end_time"
	FieldTotalPrice            = "total_price"
	FieldDepositAmount         = "deposit_amount"
	FieldDiscountApplied       = "discount_applied"
	FieldUsedMembershipCredits = "used_membership_credits"
	FieldCreditsUsed           = "credits_used"
	FieldGiftCertificateCode   = "gift_certificate_code"
	FieldNotes                 = "notes"
	FieldCancelledAt           = "cancelled_at"
	FieldCancellationReason    = "cancellation_reason"
	FieldRescheduleReason      = "reschedule_reason"
	FieldPaymentReference      = "payment_reference"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

// Occupies reports whether a booking in this status holds its resources.
// Only cancelled bookings release them; a pending hold still blocks the slot.
func (s Status) Occupies() bool {
	return s != StatusCancelled
}

type Booking struct {
	ID                    string          `db:"id"`
	ClientID              string          `db:"client_id"`
	ServiceID             string          `db:"service_id"`
	TherapistID           *string         `db:"therapist_id"`
	RoomID                *string         `db:"room_id"`
	LocationID            *string         `db:"location_id"`
	Status                Status          `db:"status"`
	StartTime             time.Time       `db:"start_time"`
	EndTime               time.Time       `db:"end_time"`
	TotalPrice            decimal.Decimal `db:"total_price"`
	DepositAmount         decimal.Decimal `db:"deposit_amount"`
	DiscountApplied       decimal.Decimal `db:"discount_applied"`
	UsedMembershipCredits bool            `db:"used_membership_credits"`
	CreditsUsed           decimal.Decimal `db:"credits_used"`
	GiftCertificateCode   *string         `db:"gift_certificate_code"`
	Notes                 string          `db:"notes"`
	CancelledAt           *time.Time      `db:"cancelled_at"`
	CancellationReason    string          `db:"cancellation_reason"`
	RescheduleReason      string          `db:"reschedule_reason"`
	PaymentReference      string          `db:"payment_reference"`
	model.Metadata
}

// Interval returns the booking's half-open UTC interval.
func (b Booking) Interval() timezone.Interval {
	return timezone.NewInterval(b.StartTime, b.EndTime)
}

// Resources returns the optional therapist/room pair the booking holds.
func (b Booking) Resources() Resources {
	return Resources{TherapistID: b.TherapistID, RoomID: b.RoomID}
}
