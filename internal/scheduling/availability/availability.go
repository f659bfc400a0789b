// Package availability decides whether a therapist or room is free for a candidate
// interval. Every function is pure: callers pass in the bookings and blocks to consider.
package availability

import (
	blockModel "spa/internal/domains/blockedtime/model"
	bookingModel "spa/internal/domains/booking/model"
	"spa/shared/timezone"
	"time"
)

type ResourceType string

const (
	ResourceTherapist ResourceType = "therapist"
	ResourceRoom      ResourceType = "room"
)

// Query is the input of a single availability decision.
type Query struct {
	Resource   ResourceType
	ResourceID string
	Candidate  timezone.Interval
	Bookings   []bookingModel.Booking
	Blocks     []blockModel.BlockedTime
	// ExcludeBookingID removes one booking from the conflict set, used when rescheduling it.
	ExcludeBookingID string
}

// Result names the first reservation that made the resource unavailable.
type Result struct {
	Available            bool
	ConflictingBookingID string
	BlockedTimeID        string
}

// Conflicts reports whether two half-open intervals overlap. Touching intervals do not conflict.
func Conflicts(a, b timezone.Interval) bool {
	return a.UTC().Overlaps(b.UTC())
}

// Check runs the availability predicate. Bookings and blocks that do not belong to the
// queried resource are ignored, so callers may pass a wider set than necessary.
func Check(q Query) Result {
	candidate := q.Candidate.UTC()

	for _, booking := range q.Bookings {
		if booking.ID != "" && booking.ID == q.ExcludeBookingID {
			continue
		}

		if !booking.Status.Occupies() || !HoldsResource(booking, q.Resource, q.ResourceID) {
			continue
		}

		if Conflicts(candidate, booking.Interval()) {
			return Result{ConflictingBookingID: booking.ID}
		}
	}

	for _, block := range q.Blocks {
		if !BlockApplies(block, q.Resource, q.ResourceID) {
			continue
		}

		if blocks(block, candidate) {
			return Result{BlockedTimeID: block.ID}
		}
	}

	return Result{Available: true}
}

// IsAvailable is Check reduced to a boolean.
func IsAvailable(q Query) bool {
	return Check(q).Available
}

// HoldsResource reports whether booking reserves the given resource.
func HoldsResource(booking bookingModel.Booking, resource ResourceType, id string) bool {
	resources := booking.Resources()

	switch resource {
	case ResourceTherapist:
		return resources.HasTherapist() && resources.Therapist() == id
	case ResourceRoom:
		return resources.HasRoom() && resources.Room() == id
	default:
		return false
	}
}

// BlockApplies reports whether block targets the resource, either directly or as a
// location-wide block.
func BlockApplies(block blockModel.BlockedTime, resource ResourceType, id string) bool {
	if block.IsLocationWide() {
		return true
	}

	switch resource {
	case ResourceTherapist:
		return block.TherapistID != nil && *block.TherapistID == id
	case ResourceRoom:
		return block.RoomID != nil && *block.RoomID == id
	default:
		return false
	}
}

func blocks(block blockModel.BlockedTime, candidate timezone.Interval) bool {
	if block.IsFullDay() {
		day := timezone.Interval{
			Start: timezone.StartOfDayUTC(block.BlockDate),
			End:   timezone.StartOfDayUTC(block.BlockDate).AddDate(0, 0, 1),
		}

		return Conflicts(candidate, day)
	}

	return Conflicts(candidate, block.Interval())
}

// ForResource keeps the bookings that occupy the given resource.
func ForResource(bookings []bookingModel.Booking, resource ResourceType, id string) []bookingModel.Booking {
	out := make([]bookingModel.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if booking.Status.Occupies() && HoldsResource(booking, resource, id) {
			out = append(out, booking)
		}
	}

	return out
}

// OnDate keeps the bookings that intersect the UTC calendar day of date.
func OnDate(bookings []bookingModel.Booking, date time.Time) []bookingModel.Booking {
	day := timezone.Interval{
		Start: timezone.StartOfDayUTC(date),
		End:   timezone.StartOfDayUTC(date).AddDate(0, 0, 1),
	}

	out := make([]bookingModel.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if Conflicts(day, booking.Interval()) {
			out = append(out, booking)
		}
	}

	return out
}
