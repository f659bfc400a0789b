package shared_test

import (
	"context"
	"spa/shared"
	"spa/shared/constant"
	"spa/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: &yes},
		{input: "1", expected: &yes},
		{input: "false", expected: &no},
		{input: "F", expected: &no},
		{input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		expected     int
	}{
		{name: "no rows", total: 0, limit: 10, expected: 1},
		{name: "exact fit", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "single row", total: 1, limit: 10, expected: 1},
		{name: "zero limit", total: 50, limit: 0, expected: 1},
		{name: "negative limit", total: 50, limit: -5, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

type roomPatch struct {
	Name       string  `db:"name"`
	LocationID *string `db:"location_id"`
	Capacity   *int    `db:"capacity"`
	Active     *bool   `db:"active"`
	Internal   string  `db:"-"`
	Untagged   string
}

func TestTransformFields(t *testing.T) {
	zero := 0
	inactive := false
	location := "downtown"

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name:     "only set fields are kept",
			data:     roomPatch{Name: "Stone Room", Internal: "x", Untagged: "y"},
			expected: map[string]any{"name": "Stone Room"},
		},
		{
			name: "pointers to zero values still count as set",
			data: roomPatch{Capacity: &zero, Active: &inactive, LocationID: &location},
			expected: map[string]any{
				"capacity":    &zero,
				"active":      &inactive,
				"location_id": &location,
			},
		},
		{
			name:     "pointer to struct",
			data:     &roomPatch{Name: "Cedar"},
			expected: map[string]any{"name": "Cedar"},
		},
		{
			name:     "empty patch carries metadata only",
			data:     roomPatch{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, "front-desk-7")

			require.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
			assert.Equal(t, "front-desk-7", result[constant.FieldModifiedBy])

			delete(result, constant.FieldModifiedAt)
			delete(result, constant.FieldModifiedBy)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("b-1", "id", "bookings")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "b-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:b-1", shared.BuildCacheKey("booking:get", "b-1"))
	assert.Equal(t, "room:capabilities:r-1:svc-1", shared.BuildCacheKey("room:capabilities", "r-1", "svc-1"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}

func TestBuildCacheKeyWithQueryIsDeterministic(t *testing.T) {
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
		},
	}
	params := dto.QueryParams{Page: 1, Limit: 10}

	first := shared.BuildCacheKeyWithQuery("blocked:gets", params, filter)

	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("blocked:gets", params, filter))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("blocked:gets", dto.QueryParams{Page: 2, Limit: 10}, filter))
	assert.Contains(t, first, "room_id=r-1&status=pending")
}

func TestActorFromContext(t *testing.T) {
	assert.Equal(t, constant.ContextSystem, shared.ActorFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyActorID, "front-desk-7")
	assert.Equal(t, "front-desk-7", shared.ActorFromContext(ctx))

	empty := context.WithValue(context.Background(), constant.ContextKeyActorID, "")
	assert.Equal(t, constant.ContextSystem, shared.ActorFromContext(empty))
}
