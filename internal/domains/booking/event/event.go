package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"spa/infras/kafka"
	"spa/infras/otel"
	"spa/internal/domains/booking/model"
	"spa/internal/scheduling/cancellation"
	"spa/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	TopicBookingCreated       = "booking.created"
	TopicBookingCancelled     = "booking.cancelled"
	TopicBookingRescheduled   = "booking.rescheduled"
	TopicBookingStatusChanged = "booking.status_changed"
)

// Publisher announces booking decisions to billing and notification consumers.
type Publisher interface {
	Created(ctx context.Context, booking model.Booking) error
	Cancelled(ctx context.Context, booking model.Booking, outcome cancellation.Outcome) error
	Rescheduled(ctx context.Context, booking model.Booking, previousStart, previousEnd time.Time) error
	StatusChanged(ctx context.Context, booking model.Booking, from model.Status) error
}

type BookingPayload struct {
	BookingID             string          `json:"booking_id"`
	ClientID              string          `json:"client_id"`
	ServiceID             string          `json:"service_id"`
	TherapistID           *string         `json:"therapist_id,omitempty"`
	RoomID                *string         `json:"room_id,omitempty"`
	LocationID            *string         `json:"location_id,omitempty"`
	Status                model.Status    `json:"status"`
	StartTime             time.Time       `json:"start_time"`
	EndTime               time.Time       `json:"end_time"`
	TotalPrice            decimal.Decimal `json:"total_price"`
	DepositAmount         decimal.Decimal `json:"deposit_amount"`
	DiscountApplied       decimal.Decimal `json:"discount_applied"`
	UsedMembershipCredits bool            `json:"used_membership_credits"`
	CreditsUsed           decimal.Decimal `json:"credits_used"`
	GiftCertificateCode   *string         `json:"gift_certificate_code,omitempty"`
}

func (p *BookingPayload) FromModel(booking model.Booking) {
	p.BookingID = booking.ID
	p.ClientID = booking.ClientID
	p.ServiceID = booking.ServiceID
	p.TherapistID = booking.TherapistID
	p.RoomID = booking.RoomID
	p.LocationID = booking.LocationID
	p.Status = booking.Status
	p.StartTime = booking.StartTime
	p.EndTime = booking.EndTime
	p.TotalPrice = booking.TotalPrice
	p.DepositAmount = booking.DepositAmount
	p.DiscountApplied = booking.DiscountApplied
	p.UsedMembershipCredits = booking.UsedMembershipCredits
	p.CreditsUsed = booking.CreditsUsed
	p.GiftCertificateCode = booking.GiftCertificateCode
}

type CreatedEvent struct {
	BookingPayload
	OccurredAt time.Time `json:"occurred_at"`
}

// CancelledEvent carries the fee and refund billing has to settle.
type CancelledEvent struct {
	BookingPayload
	Cancellation cancellation.Outcome `json:"cancellation"`
	OccurredAt   time.Time            `json:"occurred_at"`
}

type RescheduledEvent struct {
	BookingPayload
	PreviousStartTime time.Time `json:"previous_start_time"`
	PreviousEndTime   time.Time `json:"previous_end_time"`
	Reason            string    `json:"reason"`
	OccurredAt        time.Time `json:"occurred_at"`
}

type StatusChangedEvent struct {
	BookingPayload
	From             model.Status `json:"from"`
	PaymentReference string       `json:"payment_reference,omitempty"`
	OccurredAt       time.Time    `json:"occurred_at"`
}

type publisherImpl struct {
	client kafka.Client
	otel   otel.Otel
	now    func() time.Time
}

func New(client kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		otel:   otel,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (p *publisherImpl) Created(ctx context.Context, booking model.Booking) error {
	evt := CreatedEvent{OccurredAt: p.now()}
	evt.FromModel(booking)

	return p.publish(ctx, TopicBookingCreated, booking.ID, evt)
}

func (p *publisherImpl) Cancelled(ctx context.Context, booking model.Booking, outcome cancellation.Outcome) error {
	evt := CancelledEvent{Cancellation: outcome, OccurredAt: p.now()}
	evt.FromModel(booking)

	return p.publish(ctx, TopicBookingCancelled, booking.ID, evt)
}

func (p *publisherImpl) Rescheduled(ctx context.Context, booking model.Booking, previousStart, previousEnd time.Time) error {
	evt := RescheduledEvent{
		PreviousStartTime: previousStart,
		PreviousEndTime:   previousEnd,
		Reason:            booking.RescheduleReason,
		OccurredAt:        p.now(),
	}
	evt.FromModel(booking)

	return p.publish(ctx, TopicBookingRescheduled, booking.ID, evt)
}

func (p *publisherImpl) StatusChanged(ctx context.Context, booking model.Booking, from model.Status) error {
	evt := StatusChangedEvent{From: from, PaymentReference: booking.PaymentReference, OccurredAt: p.now()}
	evt.FromModel(booking)

	return p.publish(ctx, TopicBookingStatusChanged, booking.ID, evt)
}

// publish keys every message by booking id so one booking's events stay on one partition.
func (p *publisherImpl) publish(ctx context.Context, topic, key string, value any) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+topic)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"messaging.destination": topic,
		"messaging.key":         key,
	})

	if err = p.client.SendMessages(ctx, topic, kafka.Message{Key: key, Value: value}); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("booking_id", key).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	return nil
}
