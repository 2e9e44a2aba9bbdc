package model

const (
	EntityName = "booking"
)

// Booking lifecycle statuses as the remote API stores them.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// Transitions is the admin status workflow. checked_out and cancelled are
// terminal; cancellation is allowed from any live status.
var Transitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

// CanTransition reports whether moving a booking from one status to another
// is allowed by the workflow.
func CanTransition(from, to string) bool {
	for _, next := range Transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// AllowedNext returns the statuses reachable from the given status. Unknown
// statuses get no transitions rather than an error, so malformed upstream
// data degrades to a read-only booking.
func AllowedNext(from string) []string {
	next, ok := Transitions[from]
	if !ok {
		return []string{}
	}

	out := make([]string, len(next))
	copy(out, next)

	return out
}

// IsTerminal reports whether a booking in this status can no longer move.
func IsTerminal(status string) bool {
	next, ok := Transitions[status]

	return ok && len(next) == 0
}

// Booking mirrors the remote API's booking resource. RoomID is nil until an
// admin assigns a physical unit.
type Booking struct {
	ID           string  `json:"id"`
	GuestName    string  `json:"guest_name"`
	GuestEmail   string  `json:"guest_email"`
	GuestPhone   string  `json:"guest_phone"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Status       string  `json:"status"`
	Amount       float64 `json:"amount"`
	RoomID       *string `json:"room_id"`
	RoomTypeID   string  `json:"room_type_id"`
	CreatedAt    string  `json:"created_at"`
}
