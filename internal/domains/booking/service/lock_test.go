package service

import (
	"spa/internal/domains/booking/model"
	"spa/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockKeys(t *testing.T) {
	therapist, room := "t-1", "r-1"
	at := func(day, hour int) time.Time { return time.Date(2025, 11, day, hour, 0, 0, 0, time.UTC) }

	tests := []struct {
		name      string
		resources model.Resources
		interval  timezone.Interval
		expected  []string
	}{
		{
			name:      "no resources",
			resources: model.Resources{},
			interval:  timezone.Interval{Start: at(15, 10), End: at(15, 11)},
			expected:  nil,
		},
		{
			name:      "invalid interval",
			resources: model.Resources{TherapistID: &therapist},
			interval:  timezone.Interval{Start: at(15, 11), End: at(15, 10)},
			expected:  nil,
		},
		{
			name:      "both resources sorted",
			resources: model.Resources{TherapistID: &therapist, RoomID: &room},
			interval:  timezone.Interval{Start: at(15, 10), End: at(15, 11)},
			expected:  []string{"lock:room:r-1:2025-11-15", "lock:therapist:t-1:2025-11-15"},
		},
		{
			name:      "interval crossing midnight locks both dates",
			resources: model.Resources{TherapistID: &therapist},
			interval:  timezone.Interval{Start: at(15, 23), End: at(16, 1)},
			expected:  []string{"lock:therapist:t-1:2025-11-15", "lock:therapist:t-1:2025-11-16"},
		},
		{
			name:      "ending at midnight stays on one date",
			resources: model.Resources{RoomID: &room},
			interval:  timezone.Interval{Start: at(15, 23), End: at(16, 0)},
			expected:  []string{"lock:room:r-1:2025-11-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var keys []string
			for _, lock := range lockKeys(tt.resources, tt.interval) {
				keys = append(keys, lock.key)
			}

			assert.Equal(t, tt.expected, keys)
		})
	}
}
