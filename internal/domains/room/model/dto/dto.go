package dto

import (
	"spa/internal/domains/room/model"
	"spa/shared"
	gDto "spa/shared/dto"
	gModel "spa/shared/model"
	"time"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name       string  `json:"name"        validate:"required,max=100"`
	LocationID *string `json:"location_id" validate:"omitempty,max=64"`
	Capacity   int     `json:"capacity"    validate:"omitempty,min=0"`
	Active     *bool   `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(now time.Time, actor string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:         uuid.NewString(),
		Name:       c.Name,
		LocationID: c.LocationID,
		Capacity:   c.Capacity,
		Active:     active,
		Metadata:   gModel.NewMetadata(now, actor),
	}
}

type UpdateRoomRequest struct {
	Name       string  `db:"name"        json:"name"        validate:"omitempty,max=100"`
	LocationID *string `db:"location_id" json:"location_id" validate:"omitempty,max=64"`
	Capacity   *int    `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Active     *bool   `db:"active"      json:"active"      validate:"omitempty"`
}

type CapabilityRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
}

type RoomResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	LocationID *string `json:"location_id"`
	Capacity   int     `json:"capacity"`
	Active     bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.LocationID = model.LocationID
	r.Capacity = model.Capacity
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type CapabilitiesResponse struct {
	RoomID     string   `json:"room_id"`
	ServiceIDs []string `json:"service_ids"`
}

func (r *CapabilitiesResponse) FromModels(roomID string, models []model.Capability) {
	r.RoomID = roomID

	r.ServiceIDs = make([]string, len(models))
	for i, mod := range models {
		r.ServiceIDs[i] = mod.ServiceID
	}
}
