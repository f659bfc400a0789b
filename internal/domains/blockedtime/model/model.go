package model

import (
	"spa/shared/model"
	"spa/shared/timezone"
	"time"
)

const (
	TableName  = "blocked_times"
	EntityName = "blocked_time"

	FieldID          = "id"
	FieldTherapistID = "therapist_id"
	FieldRoomID      = "room_id"
	FieldLocationID  = "location_id"
	FieldBlockDate   = "block_date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldReason      = "reason"
)

// fullDayEndThreshold is 23:59:59 minus one second, as seconds since midnight.
const fullDayEndThreshold = 23*60*60 + 59*60 + 58

// BlockedTime is a staff-declared unavailability window on a single date. StartTime and
// EndTime carry only a time of day. With neither TherapistID nor RoomID set it blocks
// the whole location.
type BlockedTime struct {
	ID          string    `db:"id"`
	TherapistID *string   `db:"therapist_id"`
	RoomID      *string   `db:"room_id"`
	LocationID  *string   `db:"location_id"`
	BlockDate   time.Time `db:"block_date"`
	StartTime   time.Time `db:"start_time"`
	EndTime     time.Time `db:"end_time"`
	Reason      string    `db:"reason"`
	model.Metadata
}

// IsFullDay reports whether the block spans 00:00:00 through the end of the day.
func (b BlockedTime) IsFullDay() bool {
	return secondsOfDay(b.StartTime) == 0 && secondsOfDay(b.EndTime) >= fullDayEndThreshold
}

// Interval places the block's time-of-day window on its date, in UTC.
func (b BlockedTime) Interval() timezone.Interval {
	return timezone.Interval{
		Start: timezone.AtClock(b.BlockDate, b.StartTime),
		End:   timezone.AtClock(b.BlockDate, b.EndTime),
	}
}

// IsLocationWide reports whether the block is not tied to a therapist or room.
func (b BlockedTime) IsLocationWide() bool {
	return (b.TherapistID == nil || *b.TherapistID == "") && (b.RoomID == nil || *b.RoomID == "")
}

func secondsOfDay(t time.Time) int {
	return t.Hour()*60*60 + t.Minute()*60 + t.Second()
}
