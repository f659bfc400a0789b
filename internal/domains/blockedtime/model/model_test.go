package model_test

import (
	"spa/internal/domains/blockedtime/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(h, m, s int) time.Time {
	return time.Date(0, 1, 1, h, m, s, 0, time.UTC)
}

func TestBlockedTime_IsFullDay(t *testing.T) {
	date := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{name: "midnight to 23:59:59", start: clock(0, 0, 0), end: clock(23, 59, 59), expected: true},
		{name: "one second short still counts", start: clock(0, 0, 0), end: clock(23, 59, 58), expected: true},
		{name: "two seconds short is partial", start: clock(0, 0, 0), end: clock(23, 59, 57), expected: false},
		{name: "late start is partial", start: clock(0, 0, 1), end: clock(23, 59, 59), expected: false},
		{name: "lunch break", start: clock(12, 0, 0), end: clock(13, 0, 0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := model.BlockedTime{BlockDate: date, StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, tt.expected, block.IsFullDay())
		})
	}
}

func TestBlockedTime_Interval(t *testing.T) {
	block := model.BlockedTime{
		BlockDate: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
		StartTime: clock(12, 0, 0),
		EndTime:   clock(13, 30, 0),
	}

	interval := block.Interval()

	assert.Equal(t, time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC), interval.Start)
	assert.Equal(t, time.Date(2025, 11, 15, 13, 30, 0, 0, time.UTC), interval.End)
}

func TestBlockedTime_IsLocationWide(t *testing.T) {
	room := "r-1"

	assert.True(t, model.BlockedTime{}.IsLocationWide())
	assert.False(t, model.BlockedTime{RoomID: &room}.IsLocationWide())
}
