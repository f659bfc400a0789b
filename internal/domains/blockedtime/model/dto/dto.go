package dto

import (
	"spa/internal/domains/blockedtime/model"
	"spa/shared"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/failure"
	gModel "spa/shared/model"
	"spa/shared/validator"
	"time"

	"github.com/google/uuid"
)

type CreateBlockedTimeRequest struct {
	TherapistID *string `json:"therapist_id" validate:"omitempty"`
	RoomID      *string `json:"room_id"      validate:"omitempty"`
	LocationID  *string `json:"location_id"  validate:"omitempty"`
	Date        string  `json:"date"         validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time"   validate:"required,clock"`
	EndTime     string  `json:"end_time"     validate:"required,clock"`
	Reason      string  `json:"reason"       validate:"max=255"`
}

// ToModel parses the date and clock values. The window must end after it starts and
// name at least one target.
func (c *CreateBlockedTimeRequest) ToModel(now time.Time, actor string) (model.BlockedTime, error) {
	date, err := time.Parse(constant.DateOnlyFormat, c.Date)
	if err != nil {
		return model.BlockedTime{}, failure.Validation(failure.ReasonIntervalInvalid, "date must be YYYY-MM-DD") // nolint:wrapcheck
	}

	start, err := validator.ParseClock(c.StartTime)
	if err != nil {
		return model.BlockedTime{}, failure.Validation(failure.ReasonIntervalMissing, "start_time must be HH:MM[:SS]") // nolint:wrapcheck
	}

	end, err := validator.ParseClock(c.EndTime)
	if err != nil {
		return model.BlockedTime{}, failure.Validation(failure.ReasonIntervalMissing, "end_time must be HH:MM[:SS]") // nolint:wrapcheck
	}

	if !end.After(start) {
		return model.BlockedTime{}, failure.Validation(failure.ReasonIntervalInvalid, "end_time must be after start_time") // nolint:wrapcheck
	}

	if c.TherapistID == nil && c.RoomID == nil && c.LocationID == nil {
		return model.BlockedTime{}, failure.Validation(failure.ReasonUnknownResourceKind, "one of therapist_id, room_id or location_id is required") // nolint:wrapcheck
	}

	return model.BlockedTime{
		ID:          uuid.NewString(),
		TherapistID: c.TherapistID,
		RoomID:      c.RoomID,
		LocationID:  c.LocationID,
		BlockDate:   date,
		StartTime:   start,
		EndTime:     end,
		Reason:      c.Reason,
		Metadata:    gModel.NewMetadata(now, actor),
	}, nil
}

type BlockedTimeResponse struct {
	ID          string  `json:"id"`
	TherapistID *string `json:"therapist_id"`
	RoomID      *string `json:"room_id"`
	LocationID  *string `json:"location_id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	FullDay     bool    `json:"full_day"`
	Reason      string  `json:"reason"`
	gDto.Metadata
}

func (r *BlockedTimeResponse) FromModel(model model.BlockedTime) {
	r.ID = model.ID
	r.TherapistID = model.TherapistID
	r.RoomID = model.RoomID
	r.LocationID = model.LocationID
	r.Date = model.BlockDate.UTC().Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime.Format(constant.ClockFormat)
	r.EndTime = model.EndTime.Format(constant.ClockFormat)
	r.FullDay = model.IsFullDay()
	r.Reason = model.Reason
	r.Metadata.FromModel(model.Metadata)
}

type GetBlockedTimesResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blocked_times"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetBlockedTimesResponse) FromModels(models []model.BlockedTime, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.BlockedTimes = make([]BlockedTimeResponse, len(models))
	for i, mod := range models {
		r.BlockedTimes[i].FromModel(mod)
	}
}
