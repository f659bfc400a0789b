// Package scheduler is the single entry point into the booking engine. It sequences the
// validator, the pricing allocator and the cancellation policy over a caller-supplied
// snapshot and returns decisions for the caller to persist.
package scheduler

import (
	blockModel "spa/internal/domains/blockedtime/model"
	bookingModel "spa/internal/domains/booking/model"
	giftModel "spa/internal/domains/giftcertificate/model"
	membershipModel "spa/internal/domains/membership/model"
	roomModel "spa/internal/domains/room/model"
	therapistModel "spa/internal/domains/therapist/model"
	treatmentModel "spa/internal/domains/treatment/model"
	"spa/internal/scheduling/cancellation"
	"spa/internal/scheduling/policy"
	"spa/internal/scheduling/pricing"
	"spa/internal/scheduling/validation"
	"spa/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the read view one decision runs against.
type Snapshot struct {
	Policy           policy.Config
	Treatment        treatmentModel.Treatment
	Bookings         []bookingModel.Booking
	Blocks           []blockModel.BlockedTime
	RoomCapabilities []roomModel.Capability
	Qualifications   []therapistModel.Qualification
	Membership       *membershipModel.Membership
	GiftCertificate  *giftModel.GiftCertificate
}

// Outcome of an accepted booking request. Membership and GiftCertificate are the updated
// balances when they were drawn down, nil otherwise.
type Outcome struct {
	Booking         bookingModel.Booking
	Quote           pricing.Quote
	Membership      *membershipModel.Membership
	GiftCertificate *giftModel.GiftCertificate
}

type Option func(*Scheduler)

// WithIDGenerator replaces the uuid generator used for new bookings.
func WithIDGenerator(newID func() string) Option {
	return func(s *Scheduler) {
		s.newID = newID
	}
}

// Scheduler is safe for concurrent use; it holds no state besides its clock.
type Scheduler struct {
	clock timezone.Clock
	newID func() string
}

func New(clock timezone.Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock: clock,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Now returns the scheduler's notion of the current instant.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// RequestBooking validates the request, prices it and returns the new booking. A booking
// that owes no deposit is confirmed immediately. The snapshot's balances are never touched;
// updated copies are returned in the Outcome.
func (s *Scheduler) RequestBooking(snapshot Snapshot, req validation.Request) (Outcome, error) {
	now := s.clock.Now()

	draft, err := validation.Validate(req, snapshot.input(now))
	if err != nil {
		return Outcome{}, err
	}

	membership := cloneMembership(snapshot.Membership)
	cert := cloneGiftCertificate(snapshot.GiftCertificate)

	quote, err := pricing.Allocate(pricing.Input{
		BasePrice:            snapshot.Treatment.Price,
		Policy:               snapshot.Policy,
		Now:                  now,
		LocationID:           req.LocationID,
		UseMembershipCredits: req.UseMembershipCredits,
		CreditEligible:       snapshot.Treatment.CreditEligible,
		Membership:           membership,
		GiftCertificateCode:  req.GiftCertificateCode,
		GiftCertificate:      cert,
	})
	if err != nil {
		return Outcome{}, err
	}

	quote.ApplyTo(&draft)
	draft.ID = s.newID()

	if draft.DepositAmount.IsZero() {
		draft.Status = bookingModel.StatusConfirmed
	}

	outcome := Outcome{Booking: draft, Quote: quote}

	if quote.UsedMembershipCredits {
		outcome.Membership = membership
	}

	if quote.GiftCertificateCode != nil {
		outcome.GiftCertificate = cert
	}

	return outcome, nil
}

// CancelBooking cancels booking under cfg and returns the cancelled copy with the fee and
// refund decision.
func (s *Scheduler) CancelBooking(
	booking bookingModel.Booking,
	cfg policy.Config,
	reason string,
) (bookingModel.Booking, cancellation.Outcome, error) {
	outcome, err := cancellation.Cancel(&booking, reason, cfg, s.clock.Now())
	if err != nil {
		return bookingModel.Booking{}, cancellation.Outcome{}, err
	}

	return booking, outcome, nil
}

// RescheduleBooking moves booking to interval if the new slot passes every slot check.
func (s *Scheduler) RescheduleBooking(
	snapshot Snapshot,
	booking bookingModel.Booking,
	interval timezone.Interval,
	reason string,
) (bookingModel.Booking, error) {
	if err := cancellation.Reschedule(&booking, interval, reason, snapshot.input(s.clock.Now())); err != nil {
		return bookingModel.Booking{}, err
	}

	return booking, nil
}

// ConfirmBooking applies an external payment confirmation.
func (s *Scheduler) ConfirmBooking(booking bookingModel.Booking, paymentReference string) (bookingModel.Booking, error) {
	if err := cancellation.Confirm(&booking, paymentReference); err != nil {
		return bookingModel.Booking{}, err
	}

	return booking, nil
}

func (s *Scheduler) CompleteBooking(booking bookingModel.Booking) (bookingModel.Booking, error) {
	if err := cancellation.Complete(&booking, s.clock.Now()); err != nil {
		return bookingModel.Booking{}, err
	}

	return booking, nil
}

func (s *Scheduler) MarkNoShow(booking bookingModel.Booking) (bookingModel.Booking, error) {
	if err := cancellation.MarkNoShow(&booking, s.clock.Now()); err != nil {
		return bookingModel.Booking{}, err
	}

	return booking, nil
}

func (snapshot Snapshot) input(now time.Time) validation.Input {
	return validation.Input{
		Policy:           snapshot.Policy,
		Now:              now,
		Bookings:         snapshot.Bookings,
		Blocks:           snapshot.Blocks,
		RoomCapabilities: snapshot.RoomCapabilities,
		Qualifications:   snapshot.Qualifications,
	}
}

func cloneMembership(m *membershipModel.Membership) *membershipModel.Membership {
	if m == nil {
		return nil
	}

	clone := *m

	return &clone
}

func cloneGiftCertificate(g *giftModel.GiftCertificate) *giftModel.GiftCertificate {
	if g == nil {
		return nil
	}

	clone := *g

	return &clone
}
