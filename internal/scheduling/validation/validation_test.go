package validation_test

import (
	blockModel "spa/internal/domains/blockedtime/model"
	bookingModel "spa/internal/domains/booking/model"
	roomModel "spa/internal/domains/room/model"
	therapistModel "spa/internal/domains/therapist/model"
	"spa/internal/scheduling/policy"
	"spa/internal/scheduling/validation"
	"spa/shared/failure"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Date(2025, 11, 14, 8, 0, 0, 0, time.UTC)
	day = time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
)

func ptr(s string) *string { return &s }

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func testPolicy() policy.Config {
	return policy.Config{
		DepositPercentage:             decimal.RequireFromString("0.5"),
		CancellationWindowHours:       24,
		LateCancellationFeePercentage: decimal.NewFromInt(1),
		MinDurationMinutes:            30,
		MaxDurationMinutes:            180,
		MaxBookingAdvanceDays:         30,
		MaxNotesLength:                20,
		CreditCostPerBooking:          policy.CreditCostPerBooking,
		OpeningHour:                   9,
		ClosingHour:                   21,
	}
}

func request(start, end time.Time) validation.Request {
	return validation.Request{
		ClientID:  "client-1",
		ServiceID: "massage",
		Resources: bookingModel.Resources{TherapistID: ptr("T"), RoomID: ptr("R")},
		Start:     start,
		End:       end,
	}
}

func input() validation.Input {
	return validation.Input{
		Policy:           testPolicy(),
		Now:              now,
		RoomCapabilities: []roomModel.Capability{{RoomID: "R", ServiceID: "massage"}},
		Qualifications:   []therapistModel.Qualification{{TherapistID: "T", ServiceID: "massage"}},
	}
}

func confirmed(id string, therapist, room *string, start, end time.Time) bookingModel.Booking {
	return bookingModel.Booking{
		ID:          id,
		TherapistID: therapist,
		RoomID:      room,
		Status:      bookingModel.StatusConfirmed,
		StartTime:   start,
		EndTime:     end,
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		req    func() validation.Request
		in     func() validation.Input
		kind   failure.Kind
		reason string
	}{
		{
			name:   "missing start",
			req:    func() validation.Request { return request(time.Time{}, at(11, 0)) },
			in:     input,
			kind:   failure.KindValidation,
			reason: failure.ReasonIntervalMissing,
		},
		{
			name:   "end before start",
			req:    func() validation.Request { return request(at(11, 0), at(10, 0)) },
			in:     input,
			kind:   failure.KindValidation,
			reason: failure.ReasonIntervalInvalid,
		},
		{
			name:   "end equals start",
			req:    func() validation.Request { return request(at(11, 0), at(11, 0)) },
			in:     input,
			kind:   failure.KindValidation,
			reason: failure.ReasonIntervalInvalid,
		},
		{
			name:   "too short",
			req:    func() validation.Request { return request(at(10, 0), at(10, 15)) },
			in:     input,
			kind:   failure.KindValidation,
			reason: failure.ReasonDurationOutOfBounds,
		},
		{
			name:   "too long",
			req:    func() validation.Request { return request(at(10, 0), at(13, 1)) },
			in:     input,
			kind:   failure.KindValidation,
			reason: failure.ReasonDurationOutOfBounds,
		},
		{
			name: "notes too long",
			req: func() validation.Request {
				req := request(at(10, 0), at(11, 0))
				req.Notes = strings.Repeat("é", 21)

				return req
			},
			in:     input,
			kind:   failure.KindValidation,
			reason: failure.ReasonNotesTooLong,
		},
		{
			name:   "start in the past",
			req:    func() validation.Request { return request(now.Add(-time.Hour), now) },
			in:     input,
			kind:   failure.KindValidation,
			reason: failure.ReasonStartInPast,
		},
		{
			name:   "start equal to now",
			req:    func() validation.Request { return request(now, now.Add(time.Hour)) },
			in:     input,
			kind:   failure.KindValidation,
			reason: failure.ReasonStartInPast,
		},
		{
			name: "beyond advance limit",
			req: func() validation.Request {
				start := now.AddDate(0, 0, 31)

				return request(start, start.Add(time.Hour))
			},
			in:     input,
			kind:   failure.KindValidation,
			reason: failure.ReasonAdvanceLimitExceeded,
		},
		{
			name: "room lacks capability",
			req: func() validation.Request {
				req := request(at(10, 0), at(11, 0))
				req.ServiceID = "facial"

				return req
			},
			in: func() validation.Input {
				in := input()
				in.Qualifications = append(in.Qualifications, therapistModel.Qualification{TherapistID: "T", ServiceID: "facial"})

				return in
			},
			kind:   failure.KindIncompatibleResource,
			reason: failure.ReasonRoomLacksCapability,
		},
		{
			name: "therapist not qualified",
			req:  func() validation.Request { return request(at(10, 0), at(11, 0)) },
			in: func() validation.Input {
				in := input()
				in.Qualifications = nil

				return in
			},
			kind:   failure.KindIncompatibleResource,
			reason: failure.ReasonTherapistNotQualified,
		},
		{
			name: "therapist busy",
			req:  func() validation.Request { return request(at(10, 30), at(11, 30)) },
			in: func() validation.Input {
				in := input()
				in.Bookings = []bookingModel.Booking{confirmed("b-1", ptr("T"), nil, at(10, 0), at(11, 0))}

				return in
			},
			kind:   failure.KindConflict,
			reason: failure.ReasonTherapistNotAvailable,
		},
		{
			name: "room busy",
			req:  func() validation.Request { return request(at(10, 30), at(11, 30)) },
			in: func() validation.Input {
				in := input()
				in.Bookings = []bookingModel.Booking{confirmed("b-1", ptr("U"), ptr("R"), at(10, 0), at(11, 0))}

				return in
			},
			kind:   failure.KindConflict,
			reason: failure.ReasonRoomNotAvailable,
		},
		{
			name: "therapist checked before room",
			req:  func() validation.Request { return request(at(10, 30), at(11, 30)) },
			in: func() validation.Input {
				in := input()
				in.Bookings = []bookingModel.Booking{confirmed("b-1", ptr("T"), ptr("R"), at(10, 0), at(11, 0))}

				return in
			},
			kind:   failure.KindConflict,
			reason: failure.ReasonTherapistNotAvailable,
		},
		{
			name: "structure checked before timing",
			req:  func() validation.Request { return request(now.Add(-time.Hour), now.Add(-50*time.Minute)) },
			in:   input,
			kind: failure.KindValidation,
			// 10 minutes in the past: the duration check fires first
			reason: failure.ReasonDurationOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validation.Validate(tt.req(), tt.in())

			require.Error(t, err)
			assert.Equal(t, tt.kind, failure.GetKind(err))
			assert.Equal(t, tt.reason, failure.GetReason(err))
		})
	}
}

func TestValidate_TherapistScenario(t *testing.T) {
	in := input()
	in.Bookings = []bookingModel.Booking{confirmed("b-1", ptr("T"), nil, at(10, 0), at(11, 0))}

	therapistOnly := func(start, end time.Time) validation.Request {
		req := request(start, end)
		req.Resources = bookingModel.Resources{TherapistID: ptr("T")}

		return req
	}

	_, err := validation.Validate(therapistOnly(at(10, 30), at(11, 30)), in)
	assert.True(t, failure.IsKind(err, failure.KindConflict))

	draft, err := validation.Validate(therapistOnly(at(11, 0), at(12, 0)), in)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusPending, draft.Status)
}

func TestValidate_FullDayRoomBlock(t *testing.T) {
	in := input()
	in.Blocks = []blockModel.BlockedTime{{
		ID:        "blk-1",
		RoomID:    ptr("R"),
		BlockDate: day,
		StartTime: time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 23, 59, 59, 0, time.UTC),
	}}

	for _, hour := range []int{0, 9, 14, 22} {
		req := request(at(hour, 0), at(hour, 45))
		req.Resources = bookingModel.Resources{RoomID: ptr("R")}

		_, err := validation.Validate(req, in)

		require.Error(t, err, "hour %d", hour)
		assert.Equal(t, failure.ReasonRoomNotAvailable, failure.GetReason(err))
	}
}

func TestValidate_RejectionIsIdempotent(t *testing.T) {
	in := input()
	in.Bookings = []bookingModel.Booking{confirmed("b-1", ptr("T"), nil, at(10, 0), at(11, 0))}
	req := request(at(10, 30), at(11, 30))

	_, first := validation.Validate(req, in)
	_, second := validation.Validate(req, in)

	require.Error(t, first)
	assert.Equal(t, first, second)
}

func TestValidate_DraftIsUTC(t *testing.T) {
	zone := time.FixedZone("UTC+7", 7*60*60)
	start := at(10, 0).In(zone)
	req := request(start, start.Add(time.Hour))
	req.Notes = "aromatherapy"
	req.LocationID = ptr("downtown")

	draft, err := validation.Validate(req, input())

	require.NoError(t, err)
	assert.Equal(t, time.UTC, draft.StartTime.Location())
	assert.Equal(t, at(10, 0), draft.StartTime)
	assert.Equal(t, at(11, 0), draft.EndTime)
	assert.Equal(t, "client-1", draft.ClientID)
	assert.Equal(t, "downtown", *draft.LocationID)
	assert.Equal(t, "aromatherapy", draft.Notes)
	assert.Empty(t, draft.ID)
}

func TestValidate_NoResources(t *testing.T) {
	req := request(at(10, 0), at(11, 0))
	req.Resources = bookingModel.Resources{}

	in := input()
	in.RoomCapabilities = nil
	in.Qualifications = nil

	_, err := validation.Validate(req, in)

	assert.NoError(t, err)
}

func TestValidateSlot_ExcludesBooking(t *testing.T) {
	in := input()
	in.Bookings = []bookingModel.Booking{confirmed("b-1", ptr("T"), ptr("R"), at(10, 0), at(11, 0))}

	req := request(at(10, 30), at(11, 30))

	require.Error(t, validation.ValidateSlot(req, in))

	in.ExcludeBookingID = "b-1"
	assert.NoError(t, validation.ValidateSlot(req, in))
}

func TestCheckStructure(t *testing.T) {
	tests := []struct {
		name   string
		req    validation.Request
		reason string
	}{
		{name: "in bounds", req: request(at(10, 0), at(11, 0))},
		{name: "past slot is not a shape error", req: request(now.Add(-2*time.Hour), now.Add(-time.Hour))},
		{name: "missing end", req: request(at(10, 0), time.Time{}), reason: failure.ReasonIntervalMissing},
		{name: "reversed", req: request(at(11, 0), at(10, 0)), reason: failure.ReasonIntervalInvalid},
		{name: "decades long", req: request(at(10, 0), at(10, 0).AddDate(100, 0, 0)), reason: failure.ReasonDurationOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.CheckStructure(tt.req, testPolicy())

			if tt.reason == "" {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, failure.KindValidation, failure.GetKind(err))
			assert.Equal(t, tt.reason, failure.GetReason(err))
		})
	}
}
