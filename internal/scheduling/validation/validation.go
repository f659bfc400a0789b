// Package validation decides whether a booking request can be granted. Checks run in a
// fixed order and the first failure is returned as a *failure.Failure with a stable reason.
package validation

import (
	"fmt"
	blockModel "spa/internal/domains/blockedtime/model"
	bookingModel "spa/internal/domains/booking/model"
	roomModel "spa/internal/domains/room/model"
	therapistModel "spa/internal/domains/therapist/model"
	"spa/internal/scheduling/availability"
	"spa/internal/scheduling/policy"
	"spa/shared/failure"
	"spa/shared/timezone"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Request is a client's ask for one service over one interval.
type Request struct {
	ClientID             string
	ServiceID            string
	Resources            bookingModel.Resources
	LocationID           *string
	Start                time.Time
	End                  time.Time
	Notes                string
	UseMembershipCredits bool
	GiftCertificateCode  *string
}

// Interval returns the requested interval in UTC.
func (r Request) Interval() timezone.Interval {
	return timezone.NewInterval(r.Start, r.End)
}

// Input is the read view the checks run against.
type Input struct {
	Policy           policy.Config
	Now              time.Time
	Bookings         []bookingModel.Booking
	Blocks           []blockModel.BlockedTime
	RoomCapabilities []roomModel.Capability
	Qualifications   []therapistModel.Qualification
	ExcludeBookingID string
}

type check func(req Request, in Input) error

var slotChecks = []check{
	checkStructure,
	checkTiming,
	checkCompatibility,
	checkTherapist,
	checkRoom,
}

// ValidateSlot runs every slot check in order and returns the first rejection.
func ValidateSlot(req Request, in Input) error {
	for _, c := range slotChecks {
		if err := c(req, in); err != nil {
			return err
		}
	}

	return nil
}

// Validate accepts a request and returns a pending draft booking with UTC bounds.
// Nothing is written; pricing fields are left for the allocator.
func Validate(req Request, in Input) (bookingModel.Booking, error) {
	if err := ValidateSlot(req, in); err != nil {
		return bookingModel.Booking{}, err
	}

	interval := req.Interval()

	return bookingModel.Booking{
		ClientID:            req.ClientID,
		ServiceID:           req.ServiceID,
		TherapistID:         req.Resources.TherapistID,
		RoomID:              req.Resources.RoomID,
		LocationID:          req.LocationID,
		Status:              bookingModel.StatusPending,
		StartTime:           interval.Start,
		EndTime:             interval.End,
		TotalPrice:          decimal.Zero,
		DepositAmount:       decimal.Zero,
		DiscountApplied:     decimal.Zero,
		CreditsUsed:         decimal.Zero,
		GiftCertificateCode: req.GiftCertificateCode,
		Notes:               req.Notes,
	}, nil
}

// CheckStructure runs only the shape checks (interval present and ordered, duration within
// cfg bounds, notes length). They need no stored state, so callers run them before taking
// resource locks.
func CheckStructure(req Request, cfg policy.Config) error {
	return checkStructure(req, Input{Policy: cfg})
}

func checkStructure(req Request, in Input) error {
	if req.Start.IsZero() || req.End.IsZero() {
		return failure.Validation(failure.ReasonIntervalMissing, "start and end time are required") // nolint:wrapcheck
	}

	interval := req.Interval()
	if !interval.Valid() {
		return failure.Validation(failure.ReasonIntervalInvalid, "end time must be after start time") // nolint:wrapcheck
	}

	minutes := interval.Duration().Minutes()
	if minutes < float64(in.Policy.MinDurationMinutes) || minutes > float64(in.Policy.MaxDurationMinutes) {
		return failure.Validation( // nolint:wrapcheck
			failure.ReasonDurationOutOfBounds,
			fmt.Sprintf("duration must be between %d and %d minutes",
				in.Policy.MinDurationMinutes, in.Policy.MaxDurationMinutes),
		)
	}

	if utf8.RuneCountInString(req.Notes) > in.Policy.MaxNotesLength {
		return failure.Validation( // nolint:wrapcheck
			failure.ReasonNotesTooLong,
			fmt.Sprintf("notes must be at most %d characters", in.Policy.MaxNotesLength),
		)
	}

	return nil
}

func checkTiming(req Request, in Input) error {
	start := timezone.ToUTC(req.Start)

	if !timezone.IsFuture(start, in.Now) {
		return failure.Validation(failure.ReasonStartInPast, "start time must be in the future") // nolint:wrapcheck
	}

	limit := timezone.ToUTC(in.Now).AddDate(0, 0, in.Policy.MaxBookingAdvanceDays)
	if start.After(limit) {
		return failure.Validation( // nolint:wrapcheck
			failure.ReasonAdvanceLimitExceeded,
			fmt.Sprintf("bookings can be made at most %d days in advance", in.Policy.MaxBookingAdvanceDays),
		)
	}

	return nil
}

func checkCompatibility(req Request, in Input) error {
	resources := req.Resources

	switch resources.Kind() {
	case bookingModel.ResourceKindNone:
		return nil
	case bookingModel.ResourceKindTherapistOnly:
		return checkQualification(resources.Therapist(), req.ServiceID, in.Qualifications)
	case bookingModel.ResourceKindRoomOnly:
		return checkCapability(resources.Room(), req.ServiceID, in.RoomCapabilities)
	case bookingModel.ResourceKindBoth:
		if err := checkCapability(resources.Room(), req.ServiceID, in.RoomCapabilities); err != nil {
			return err
		}

		return checkQualification(resources.Therapist(), req.ServiceID, in.Qualifications)
	default:
		return failure.InvariantViolation(failure.ReasonUnknownResourceKind, "unknown resource kind") // nolint:wrapcheck
	}
}

func checkCapability(roomID, serviceID string, capabilities []roomModel.Capability) error {
	for _, capability := range capabilities {
		if capability.RoomID == roomID && capability.ServiceID == serviceID {
			return nil
		}
	}

	return failure.IncompatibleResource( // nolint:wrapcheck
		failure.ReasonRoomLacksCapability,
		fmt.Sprintf("room %s does not support service %s", roomID, serviceID),
	)
}

func checkQualification(therapistID, serviceID string, qualifications []therapistModel.Qualification) error {
	for _, qualification := range qualifications {
		if qualification.TherapistID == therapistID && qualification.ServiceID == serviceID {
			return nil
		}
	}

	return failure.IncompatibleResource( // nolint:wrapcheck
		failure.ReasonTherapistNotQualified,
		fmt.Sprintf("therapist %s is not qualified for service %s", therapistID, serviceID),
	)
}

func checkTherapist(req Request, in Input) error {
	if !req.Resources.HasTherapist() {
		return nil
	}

	result := availability.Check(query(availability.ResourceTherapist, req.Resources.Therapist(), req, in))
	if result.Available {
		return nil
	}

	return failure.ConflictWithReason( // nolint:wrapcheck
		failure.ReasonTherapistNotAvailable,
		fmt.Sprintf("therapist %s is not available for the requested time", req.Resources.Therapist()),
	)
}

func checkRoom(req Request, in Input) error {
	if !req.Resources.HasRoom() {
		return nil
	}

	result := availability.Check(query(availability.ResourceRoom, req.Resources.Room(), req, in))
	if result.Available {
		return nil
	}

	return failure.ConflictWithReason( // nolint:wrapcheck
		failure.ReasonRoomNotAvailable,
		fmt.Sprintf("room %s is not available for the requested time", req.Resources.Room()),
	)
}

func query(resource availability.ResourceType, id string, req Request, in Input) availability.Query {
	return availability.Query{
		Resource:         resource,
		ResourceID:       id,
		Candidate:        req.Interval(),
		Bookings:         in.Bookings,
		Blocks:           in.Blocks,
		ExcludeBookingID: in.ExcludeBookingID,
	}
}
