package model

import "spa/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldName       = "name"
	FieldLocationID = "location_id"
	FieldCapacity   = "capacity"
	FieldActive     = "active"
)

const (
	CapabilityTableName  = "room_capabilities"
	CapabilityEntityName = "room_capability"

	FieldCapabilityRoomID    = "room_id"
	FieldCapabilityServiceID = "service_id"
)

type Room struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	LocationID *string `db:"location_id"`
	Capacity   int     `db:"capacity"`
	Active     bool    `db:"active"`
	model.Metadata
}

// Capability records that a room can host a service.
type Capability struct {
	RoomID    string `db:"room_id"`
	ServiceID string `db:"service_id"`
}
