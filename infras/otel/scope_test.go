package otel

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestToAttribute(t *testing.T) {
	room := "r-1"

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "string", value: "b-1", want: attribute.StringValue("b-1")},
		{name: "int", value: 3, want: attribute.IntValue(3)},
		{name: "int64", value: int64(7), want: attribute.Int64Value(7)},
		{name: "float", value: 0.5, want: attribute.Float64Value(0.5)},
		{name: "bool", value: true, want: attribute.BoolValue(true)},
		{name: "optional id", value: &room, want: attribute.StringValue("r-1")},
		{name: "absent id", value: (*string)(nil), want: attribute.StringValue("")},
		{name: "amount", value: decimal.RequireFromString("60.00"), want: attribute.StringValue("60")},
		{
			name:  "instant in UTC",
			value: time.Date(2025, 11, 15, 17, 0, 0, 0, time.FixedZone("WITA", 8*3600)),
			want:  attribute.StringValue("2025-11-15T09:00:00Z"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := toAttribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}
