package dto_test

import (
	"spa/internal/domains/blockedtime/model/dto"
	"spa/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlockedTimeRequest_ToModel(t *testing.T) {
	now := time.Date(2025, 11, 14, 8, 0, 0, 0, time.UTC)
	room := "r-1"

	tests := []struct {
		name       string
		req        dto.CreateBlockedTimeRequest
		wantReason string
		fullDay    bool
	}{
		{
			name:    "full day",
			req:     dto.CreateBlockedTimeRequest{RoomID: &room, Date: "2025-11-15", StartTime: "00:00", EndTime: "23:59:59"},
			fullDay: true,
		},
		{
			name: "partial",
			req:  dto.CreateBlockedTimeRequest{RoomID: &room, Date: "2025-11-15", StartTime: "12:00", EndTime: "13:30"},
		},
		{
			name:       "bad date",
			req:        dto.CreateBlockedTimeRequest{Date: "15/11/2025", StartTime: "12:00", EndTime: "13:00"},
			wantReason: failure.ReasonIntervalInvalid,
		},
		{
			name:       "bad clock",
			req:        dto.CreateBlockedTimeRequest{Date: "2025-11-15", StartTime: "noon", EndTime: "13:00"},
			wantReason: failure.ReasonIntervalMissing,
		},
		{
			name:       "end before start",
			req:        dto.CreateBlockedTimeRequest{Date: "2025-11-15", StartTime: "13:00", EndTime: "12:00"},
			wantReason: failure.ReasonIntervalInvalid,
		},
		{
			name:       "no target",
			req:        dto.CreateBlockedTimeRequest{Date: "2025-11-15", StartTime: "12:00", EndTime: "13:00"},
			wantReason: failure.ReasonUnknownResourceKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := tt.req.ToModel(now, "front-desk")

			if tt.wantReason != "" {
				require.Error(t, err)
				assert.Equal(t, failure.KindValidation, failure.GetKind(err))
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, block.ID)
			assert.Equal(t, tt.fullDay, block.IsFullDay())
			assert.Equal(t, "front-desk", block.CreatedBy)
		})
	}
}

func TestBlockedTimeResponse_FromModel(t *testing.T) {
	room := "r-1"
	req := dto.CreateBlockedTimeRequest{RoomID: &room, Date: "2025-11-15", StartTime: "12:00", EndTime: "13:30", Reason: "deep clean"}

	block, err := req.ToModel(time.Now(), "front-desk")
	require.NoError(t, err)

	var res dto.BlockedTimeResponse
	res.FromModel(block)

	assert.Equal(t, "2025-11-15", res.Date)
	assert.Equal(t, "12:00:00", res.StartTime)
	assert.Equal(t, "13:30:00", res.EndTime)
	assert.False(t, res.FullDay)
	assert.Equal(t, "deep clean", res.Reason)
}
