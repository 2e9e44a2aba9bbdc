package model

const (
	EntityName = "room"
)

// Physical room housekeeping statuses. Independent of booking status: a room
// can be Dirty while its booking is still checked_in.
const (
	RoomStatusAvailable        = "Available"
	RoomStatusOccupied         = "Occupied"
	RoomStatusUnderMaintenance = "Under Maintenance"
	RoomStatusDirty            = "Dirty"
)

// RoomType is a bookable rate class. The remote API embeds the physical units.
type RoomType struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	BasePrice   float64        `json:"base_price"`
	Amenities   []string       `json:"amenities"`
	Rooms       []PhysicalRoom `json:"rooms"`
}

// PhysicalRoom is a specific numbered unit within a room type.
type PhysicalRoom struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	Status     string `json:"status"`
	RoomTypeID string `json:"room_type_id"`
}

// AvailableRooms returns the units of this type currently open for assignment.
func (rt RoomType) AvailableRooms() []PhysicalRoom {
	available := make([]PhysicalRoom, 0, len(rt.Rooms))

	for _, room := range rt.Rooms {
		if room.Status == RoomStatusAvailable {
			available = append(available, room)
		}
	}

	return available
}

// HasRoom reports whether the given physical room belongs to this type.
func (rt RoomType) HasRoom(roomID string) bool {
	for _, room := range rt.Rooms {
		if room.ID == roomID {
			return true
		}
	}

	return false
}
