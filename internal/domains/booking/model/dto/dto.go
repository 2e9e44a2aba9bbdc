package dto

import (
	"sunstone/internal/domains/booking/model"
	"sunstone/shared"
	gDto "sunstone/shared/dto"
)

// CreateBookingRequest is the public wizard submission. Dates arrive in ISO
// form; the service converts them to the remote API's DD-MM-YYYY before
// forwarding.
type CreateBookingRequest struct {
	GuestName       string `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string `json:"guest_email"      validate:"required,email"`
	GuestPhone      string `json:"guest_phone"      validate:"required,max=30"`
	RoomTypeID      string `json:"room_type_id"     validate:"required"`
	CheckInDate     string `json:"check_in_date"    validate:"required,datetime=2006-01-02"`
	CheckOutDate    string `json:"check_out_date"   validate:"required,datetime=2006-01-02"`
	Rooms           int    `json:"rooms"            validate:"required,gte=1"`
	PaymentMethod   string `json:"payment_method"   validate:"required,oneof=paystack bank_transfer pay_at_hotel"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
	AcceptTerms     bool   `json:"accept_terms"     validate:"required"`
}

// RemoteCreateBookingRequest is the payload the remote API expects: dates in
// DD-MM-YYYY and the amount already derived on our side.
type RemoteCreateBookingRequest struct {
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone"`
	RoomTypeID      string  `json:"room_type_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Rooms           int     `json:"rooms"`
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"payment_method"`
	SpecialRequests string  `json:"special_requests,omitempty"`
}

type AvailabilityRequest struct {
	RoomTypeID   string `json:"room_type_id"   validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Rooms        int    `json:"rooms"          validate:"omitempty,gte=1"`
}

type AvailabilityResponse struct {
	Available      bool `json:"available"`
	RoomsRemaining int  `json:"rooms_remaining"`
}

type UpdateBookingRequest struct {
	GuestName    string  `json:"guest_name"     validate:"omitempty,max=100"`
	GuestEmail   string  `json:"guest_email"    validate:"omitempty,email"`
	GuestPhone   string  `json:"guest_phone"    validate:"omitempty,max=30"`
	CheckInDate  string  `json:"check_in_date"  validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	RoomTypeID   string  `json:"room_type_id"   validate:"omitempty"`
	RoomID       *string `json:"room_id"        validate:"omitempty"`
	Amount       float64 `json:"amount"         validate:"omitempty,gte=0"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled"`
}

type SendEmailRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type BookingResponse struct {
	ID           string   `json:"id"`
	GuestName    string   `json:"guest_name"`
	GuestEmail   string   `json:"guest_email"`
	GuestPhone   string   `json:"guest_phone"`
	CheckInDate  string   `json:"check_in_date"`
	CheckOutDate string   `json:"check_out_date"`
	Status       string   `json:"status"`
	Amount       float64  `json:"amount"`
	RoomID       *string  `json:"room_id"`
	RoomTypeID   string   `json:"room_type_id"`
	CreatedAt    string   `json:"created_at,omitempty"`
	AllowedNext  []string `json:"allowed_next"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.GuestName = mod.GuestName
	r.GuestEmail = mod.GuestEmail
	r.GuestPhone = mod.GuestPhone
	r.CheckInDate = mod.CheckInDate
	r.CheckOutDate = mod.CheckOutDate
	r.Status = mod.Status
	r.Amount = mod.Amount
	r.RoomID = mod.RoomID
	r.RoomTypeID = mod.RoomTypeID
	r.CreatedAt = mod.CreatedAt
	r.AllowedNext = model.AllowedNext(mod.Status)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Total     int               `json:"total"`
	TotalPage int               `json:"total_page"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, total int, params gDto.QueryParams) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}

	r.Total = total
	r.TotalPage = shared.CalculateTotalPage(total, params.Limit)
	r.Page = params.Page
	r.Limit = params.Limit
}
