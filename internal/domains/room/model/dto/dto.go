package dto

import (
	"sunstone/internal/domains/room/model"
)

type CreateRoomTypeRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty"`
	BasePrice   float64  `json:"base_price"  validate:"required,gt=0"`
	Amenities   []string `json:"amenities"   validate:"omitempty,dive,max=50"`
}

type UpdateRoomTypeRequest struct {
	Name        string   `json:"name"        validate:"omitempty,max=100"`
	Description string   `json:"description" validate:"omitempty"`
	BasePrice   float64  `json:"base_price"  validate:"omitempty,gt=0"`
	Amenities   []string `json:"amenities"   validate:"omitempty,dive,max=50"`
}

type CreatePhysicalRoomRequest struct {
	RoomNumber string `json:"room_number"  validate:"required,max=20"`
	RoomTypeID string `json:"room_type_id" validate:"required"`
	Status     string `json:"status"       validate:"omitempty,oneof=Available Occupied 'Under Maintenance' Dirty"`
}

type UpdatePhysicalRoomRequest struct {
	RoomNumber string `json:"room_number"  validate:"omitempty,max=20"`
	RoomTypeID string `json:"room_type_id" validate:"omitempty"`
	Status     string `json:"status"       validate:"omitempty,oneof=Available Occupied 'Under Maintenance' Dirty"`
}

type RoomTypeResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	BasePrice   float64                `json:"base_price"`
	Amenities   []string               `json:"amenities"`
	Rooms       []PhysicalRoomResponse `json:"rooms"`
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.BasePrice = mod.BasePrice
	r.Amenities = mod.Amenities

	r.Rooms = make([]PhysicalRoomResponse, len(mod.Rooms))
	for i, room := range mod.Rooms {
		r.Rooms[i].FromModel(room)
	}
}

type PhysicalRoomResponse struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	Status     string `json:"status"`
	RoomTypeID string `json:"room_type_id"`
}

func (r *PhysicalRoomResponse) FromModel(mod model.PhysicalRoom) {
	r.ID = mod.ID
	r.RoomNumber = mod.RoomNumber
	r.Status = mod.Status
	r.RoomTypeID = mod.RoomTypeID
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType) {
	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}

// GetAvailableRoomsResponse backs the edit form's room dropdown; it only ever
// contains units of the requested type so a stale selection from another type
// cannot survive a type change.
type GetAvailableRoomsResponse struct {
	RoomTypeID string                 `json:"room_type_id"`
	Rooms      []PhysicalRoomResponse `json:"rooms"`
}
