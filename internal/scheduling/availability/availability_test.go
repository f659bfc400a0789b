package availability_test

import (
	blockModel "spa/internal/domains/blockedtime/model"
	bookingModel "spa/internal/domains/booking/model"
	"spa/internal/scheduling/availability"
	"spa/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var day = time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func span(startHour, startMinute, endHour, endMinute int) timezone.Interval {
	return timezone.Interval{Start: at(startHour, startMinute), End: at(endHour, endMinute)}
}

func ptr(s string) *string { return &s }

func therapistBooking(id, therapist string, status bookingModel.Status, interval timezone.Interval) bookingModel.Booking {
	return bookingModel.Booking{
		ID:          id,
		TherapistID: ptr(therapist),
		Status:      status,
		StartTime:   interval.Start,
		EndTime:     interval.End,
	}
}

func roomBlock(id, room string, start, end time.Time) blockModel.BlockedTime {
	return blockModel.BlockedTime{
		ID:        id,
		RoomID:    ptr(room),
		BlockDate: day,
		StartTime: start,
		EndTime:   end,
	}
}

func clock(h, m, s int) time.Time {
	return time.Date(0, 1, 1, h, m, s, 0, time.UTC)
}

func TestConflicts_Symmetry(t *testing.T) {
	intervals := []timezone.Interval{
		span(10, 0, 11, 0),
		span(10, 30, 11, 30),
		span(11, 0, 12, 0),
		span(9, 0, 13, 0),
		span(10, 15, 10, 45),
		span(8, 0, 10, 0),
		span(12, 0, 12, 30),
	}

	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t, availability.Conflicts(a, b), availability.Conflicts(b, a), "a=%v b=%v", a, b)
		}
	}
}

func TestConflicts_BoundaryPolicy(t *testing.T) {
	existing := span(10, 0, 11, 0)

	tests := []struct {
		name      string
		candidate timezone.Interval
		expected  bool
	}{
		{name: "start inside", candidate: span(10, 30, 11, 30), expected: true},
		{name: "end inside", candidate: span(9, 30, 10, 30), expected: true},
		{name: "contains existing", candidate: span(9, 0, 12, 0), expected: true},
		{name: "inside existing", candidate: span(10, 15, 10, 45), expected: true},
		{name: "identical", candidate: span(10, 0, 11, 0), expected: true},
		{name: "touching after", candidate: span(11, 0, 12, 0), expected: false},
		{name: "touching before", candidate: span(9, 0, 10, 0), expected: false},
		{name: "disjoint", candidate: span(13, 0, 14, 0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, availability.Conflicts(tt.candidate, existing))
		})
	}
}

func TestCheck_TherapistScenario(t *testing.T) {
	bookings := []bookingModel.Booking{
		therapistBooking("b-1", "T", bookingModel.StatusConfirmed, span(10, 0, 11, 0)),
	}

	overlapping := availability.Check(availability.Query{
		Resource:   availability.ResourceTherapist,
		ResourceID: "T",
		Candidate:  span(10, 30, 11, 30),
		Bookings:   bookings,
	})
	assert.False(t, overlapping.Available)
	assert.Equal(t, "b-1", overlapping.ConflictingBookingID)

	touching := availability.Check(availability.Query{
		Resource:   availability.ResourceTherapist,
		ResourceID: "T",
		Candidate:  span(11, 0, 12, 0),
		Bookings:   bookings,
	})
	assert.True(t, touching.Available)
}

func TestCheck_StatusesThatOccupy(t *testing.T) {
	tests := []struct {
		status    bookingModel.Status
		available bool
	}{
		{status: bookingModel.StatusPending, available: false},
		{status: bookingModel.StatusConfirmed, available: false},
		{status: bookingModel.StatusCompleted, available: false},
		{status: bookingModel.StatusNoShow, available: false},
		{status: bookingModel.StatusCancelled, available: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := availability.IsAvailable(availability.Query{
				Resource:   availability.ResourceTherapist,
				ResourceID: "T",
				Candidate:  span(10, 0, 11, 0),
				Bookings:   []bookingModel.Booking{therapistBooking("b-1", "T", tt.status, span(10, 0, 11, 0))},
			})

			assert.Equal(t, tt.available, got)
		})
	}
}

func TestCheck_IgnoresOtherResources(t *testing.T) {
	got := availability.IsAvailable(availability.Query{
		Resource:   availability.ResourceTherapist,
		ResourceID: "T",
		Candidate:  span(10, 0, 11, 0),
		Bookings: []bookingModel.Booking{
			therapistBooking("b-1", "U", bookingModel.StatusConfirmed, span(10, 0, 11, 0)),
			{ID: "b-2", RoomID: ptr("T"), Status: bookingModel.StatusConfirmed, StartTime: at(10, 0), EndTime: at(11, 0)},
		},
		Blocks: []blockModel.BlockedTime{roomBlock("blk-1", "T", clock(0, 0, 0), clock(23, 59, 59))},
	})

	assert.True(t, got, "a room with the same id must not block a therapist")
}

func TestCheck_ExcludesOwnBooking(t *testing.T) {
	bookings := []bookingModel.Booking{
		therapistBooking("b-1", "T", bookingModel.StatusConfirmed, span(10, 0, 11, 0)),
	}

	query := availability.Query{
		Resource:   availability.ResourceTherapist,
		ResourceID: "T",
		Candidate:  span(10, 30, 11, 30),
		Bookings:   bookings,
	}

	assert.False(t, availability.IsAvailable(query))

	query.ExcludeBookingID = "b-1"
	assert.True(t, availability.IsAvailable(query))
}

func TestCheck_FullDayBlock(t *testing.T) {
	blocks := []blockModel.BlockedTime{roomBlock("blk-1", "R", clock(0, 0, 0), clock(23, 59, 59))}

	for _, candidate := range []timezone.Interval{
		span(0, 0, 0, 30),
		span(9, 0, 10, 0),
		{Start: at(23, 59).Add(59*time.Second + 500*time.Millisecond), End: at(23, 59).Add(59*time.Second + 900*time.Millisecond)},
	} {
		result := availability.Check(availability.Query{
			Resource:   availability.ResourceRoom,
			ResourceID: "R",
			Candidate:  candidate,
			Blocks:     blocks,
		})

		assert.False(t, result.Available, "candidate %v", candidate)
		assert.Equal(t, "blk-1", result.BlockedTimeID)
	}

	nextDay := availability.IsAvailable(availability.Query{
		Resource:   availability.ResourceRoom,
		ResourceID: "R",
		Candidate:  timezone.Interval{Start: at(24, 0), End: at(25, 0)},
		Blocks:     blocks,
	})
	assert.True(t, nextDay)
}

func TestCheck_PartialBlock(t *testing.T) {
	blocks := []blockModel.BlockedTime{roomBlock("blk-1", "R", clock(12, 0, 0), clock(13, 0, 0))}

	query := availability.Query{
		Resource:   availability.ResourceRoom,
		ResourceID: "R",
		Blocks:     blocks,
	}

	query.Candidate = span(12, 30, 13, 30)
	assert.False(t, availability.IsAvailable(query))

	query.Candidate = span(13, 0, 14, 0)
	assert.True(t, availability.IsAvailable(query))

	query.Candidate = span(11, 0, 12, 0)
	assert.True(t, availability.IsAvailable(query))
}

func TestCheck_LocationWideBlock(t *testing.T) {
	block := blockModel.BlockedTime{
		ID:        "holiday",
		BlockDate: day,
		StartTime: clock(0, 0, 0),
		EndTime:   clock(23, 59, 59),
	}

	for _, resource := range []availability.ResourceType{availability.ResourceTherapist, availability.ResourceRoom} {
		result := availability.Check(availability.Query{
			Resource:   resource,
			ResourceID: "any",
			Candidate:  span(15, 0, 16, 0),
			Blocks:     []blockModel.BlockedTime{block},
		})

		assert.Equal(t, "holiday", result.BlockedTimeID)
	}
}

func TestForResourceAndOnDate(t *testing.T) {
	bookings := []bookingModel.Booking{
		therapistBooking("b-1", "T", bookingModel.StatusConfirmed, span(10, 0, 11, 0)),
		therapistBooking("b-2", "T", bookingModel.StatusCancelled, span(12, 0, 13, 0)),
		therapistBooking("b-3", "U", bookingModel.StatusConfirmed, span(10, 0, 11, 0)),
		therapistBooking("b-4", "T", bookingModel.StatusPending, timezone.Interval{Start: at(34, 0), End: at(35, 0)}),
	}

	forT := availability.ForResource(bookings, availability.ResourceTherapist, "T")
	assert.Len(t, forT, 2)

	onDay := availability.OnDate(forT, at(15, 0))
	assert.Len(t, onDay, 1)
	assert.Equal(t, "b-1", onDay[0].ID)
}
