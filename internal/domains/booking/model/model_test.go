package model_test

import (
	"spa/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestResources_Kind(t *testing.T) {
	tests := []struct {
		name      string
		resources model.Resources
		expected  model.ResourceKind
	}{
		{name: "none", resources: model.Resources{}, expected: model.ResourceKindNone},
		{name: "empty ids count as absent", resources: model.Resources{TherapistID: ptr(""), RoomID: ptr("")}, expected: model.ResourceKindNone},
		{name: "therapist only", resources: model.Resources{TherapistID: ptr("t-1")}, expected: model.ResourceKindTherapistOnly},
		{name: "room only", resources: model.Resources{RoomID: ptr("r-1")}, expected: model.ResourceKindRoomOnly},
		{name: "both", resources: model.Resources{TherapistID: ptr("t-1"), RoomID: ptr("r-1")}, expected: model.ResourceKindBoth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.resources.Kind())
		})
	}
}

func TestStatus_Occupies(t *testing.T) {
	assert.True(t, model.StatusPending.Occupies())
	assert.True(t, model.StatusConfirmed.Occupies())
	assert.True(t, model.StatusCompleted.Occupies())
	assert.True(t, model.StatusNoShow.Occupies())
	assert.False(t, model.StatusCancelled.Occupies())
}
