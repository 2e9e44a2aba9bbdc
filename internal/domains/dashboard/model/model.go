package model

// Analytics is the back-office overview snapshot computed by the remote API.
type Analytics struct {
	OccupancyRate   float64          `json:"occupancy_rate"`
	RevenueToday    float64          `json:"revenue_today"`
	RevenueMonth    float64          `json:"revenue_month"`
	BookingsToday   int              `json:"bookings_today"`
	PendingBookings int              `json:"pending_bookings"`
	CheckInsToday   int              `json:"check_ins_today"`
	CheckOutsToday  int              `json:"check_outs_today"`
	RoomStatusGrid  []RoomStatusCell `json:"room_status_grid"`
}

// RoomStatusCell is one unit in the housekeeping grid.
type RoomStatusCell struct {
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Status     string `json:"status"`
	BookingID  string `json:"booking_id,omitempty"`
}
