// Package wizard holds the three-step booking flow as a pure state machine:
// no I/O, no clock reads outside Today-relative validation, so every rule is
// unit-testable in isolation. The public booking endpoints reuse its
// guest-facing failure rewrite, and the rooms read falls back to its static
// room list when the backend fetch fails.
package wizard

import (
	"strings"
	"time"

	"sunstone/internal/domains/booking/model"
	"sunstone/internal/domains/booking/model/dto"
	"sunstone/shared/dates"
	"sunstone/shared/failure"
)

type Step int

const (
	StepRoomAndDates Step = iota + 1
	StepGuestDetails
	StepPayment
)

type PaymentMethod string

const (
	PaymentPaystack     PaymentMethod = "paystack"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentPayAtHotel   PaymentMethod = "pay_at_hotel"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentPaystack, PaymentBankTransfer, PaymentPayAtHotel:
		return true
	}

	return false
}

// RoomOption is a wizard-facing room choice, either from the live rooms list
// or the static fallback.
type RoomOption struct {
	RoomTypeID    string
	Name          string
	PricePerNight float64
}

// FallbackRooms is shown only when the live rooms fetch failed. IDs are
// stable slugs the remote API recognizes.
var FallbackRooms = []RoomOption{
	{RoomTypeID: "standard", Name: "Standard Room", PricePerNight: 35000},
	{RoomTypeID: "deluxe", Name: "Deluxe Room", PricePerNight: 55000},
	{RoomTypeID: "executive-suite", Name: "Executive Suite", PricePerNight: 95000},
}

// Summary is the computed price breakdown shown once a room is selected.
// Taxes are fixed at zero for now; the line item stays so the breakdown
// shape does not change when a rate is introduced.
type Summary struct {
	Nights   int
	Subtotal float64
	Taxes    float64
	Total    float64
}

type Wizard struct {
	step Step

	checkIn   time.Time
	checkOut  time.Time
	hasDates  bool
	guests    int
	roomCount int
	room      *RoomOption

	firstName       string
	lastName        string
	email           string
	phone           string
	specialRequests string

	paymentMethod PaymentMethod
	termsAccepted bool

	created *model.Booking
}

func New() *Wizard {
	return &Wizard{
		step:      StepRoomAndDates,
		guests:    1,
		roomCount: 1,
	}
}

func (w *Wizard) Step() Step { return w.step }

// SetCheckIn rejects past dates; moving check-in onto or past the current
// check-out drags check-out to the next day.
func (w *Wizard) SetCheckIn(day time.Time) error {
	if day.Before(dates.Today()) {
		return failure.BadRequestFromString("check-in date cannot be in the past")
	}

	w.checkIn = day

	if w.hasDates && !w.checkOut.After(w.checkIn) {
		w.checkOut = dates.NextDay(w.checkIn)
	}

	if !w.hasDates {
		w.checkOut = dates.NextDay(w.checkIn)
		w.hasDates = true
	}

	return nil
}

func (w *Wizard) SetCheckOut(day time.Time) error {
	if !w.hasDates {
		return failure.BadRequestFromString("select a check-in date first")
	}

	if !day.After(w.checkIn) {
		return failure.BadRequestFromString("check-out date must be after check-in")
	}

	w.checkOut = day

	return nil
}

func (w *Wizard) SetGuests(n int) {
	if n < 1 {
		n = 1
	}

	w.guests = n
}

func (w *Wizard) IncrementRooms() {
	w.roomCount++
}

func (w *Wizard) DecrementRooms() {
	if w.roomCount > 1 {
		w.roomCount--
	}
}

func (w *Wizard) RoomCount() int { return w.roomCount }

func (w *Wizard) SelectRoom(room RoomOption) {
	w.room = &room
}

func (w *Wizard) SetGuestDetails(firstName, lastName, email, phone, specialRequests string) {
	w.firstName = strings.TrimSpace(firstName)
	w.lastName = strings.TrimSpace(lastName)
	w.email = strings.TrimSpace(email)
	w.phone = strings.TrimSpace(phone)
	w.specialRequests = strings.TrimSpace(specialRequests)
}

func (w *Wizard) SetPaymentMethod(m PaymentMethod) error {
	if !ValidPaymentMethod(m) {
		return failure.BadRequestFromString("unknown payment method")
	}

	w.paymentMethod = m

	return nil
}

func (w *Wizard) AcceptTerms(accepted bool) {
	w.termsAccepted = accepted
}

// Summary returns the price breakdown, or false until both dates and a room
// are set.
func (w *Wizard) Summary() (Summary, bool) {
	if !w.hasDates || w.room == nil {
		return Summary{}, false
	}

	nights := dates.Nights(w.checkIn, w.checkOut)
	subtotal := w.room.PricePerNight * float64(nights) * float64(w.roomCount)

	s := Summary{
		Nights:   nights,
		Subtotal: subtotal,
		Taxes:    0,
	}
	s.Total = s.Subtotal + s.Taxes

	return s, true
}

func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepRoomAndDates:
		return w.hasDates && w.room != nil
	case StepGuestDetails:
		return w.firstName != "" && w.lastName != "" && w.email != "" && w.phone != ""
	case StepPayment:
		return ValidPaymentMethod(w.paymentMethod) && w.termsAccepted
	}

	return false
}

func (w *Wizard) Advance() error {
	if !w.CanAdvance() {
		switch w.step {
		case StepRoomAndDates:
			return failure.BadRequestFromString("select your dates and a room to continue")
		case StepGuestDetails:
			return failure.BadRequestFromString("fill in your name, email and phone to continue")
		case StepPayment:
			return failure.BadRequestFromString("choose a payment method and accept the terms")
		}
	}

	if w.step < StepPayment {
		w.step++
	}

	return nil
}

// Back never fails; entered data survives so a guest can step backwards to
// fix something without losing the rest.
func (w *Wizard) Back() {
	if w.step > StepRoomAndDates {
		w.step--
	}
}

// BuildCreateRequest produces the remote payload. Only valid at the payment
// step with terms accepted.
func (w *Wizard) BuildCreateRequest() (dto.RemoteCreateBookingRequest, error) {
	if w.step != StepPayment || !w.CanAdvance() {
		return dto.RemoteCreateBookingRequest{}, failure.BadRequestFromString("booking is not ready to submit")
	}

	summary, _ := w.Summary()

	return dto.RemoteCreateBookingRequest{
		GuestName:       w.firstName + " " + w.lastName,
		GuestEmail:      w.email,
		GuestPhone:      w.phone,
		RoomTypeID:      w.room.RoomTypeID,
		CheckInDate:     w.checkIn.Format("02-01-2006"),
		CheckOutDate:    w.checkOut.Format("02-01-2006"),
		Rooms:           w.roomCount,
		Amount:          summary.Total,
		PaymentMethod:   string(w.paymentMethod),
		SpecialRequests: w.specialRequests,
	}, nil
}

// Complete records the created booking so it can be shown inline without a
// re-fetch.
func (w *Wizard) Complete(booking model.Booking) {
	w.created = &booking
}

func (w *Wizard) Created() (model.Booking, bool) {
	if w.created == nil {
		return model.Booking{}, false
	}

	return *w.created, true
}

const genericSubmitError = "We couldn't complete your booking. Please check your details — the room may no longer be available for those dates."

// FriendlyError rewrites raw backend failures into guest-facing copy.
// Validation-shaped errors collapse into one generic message; everything
// else passes through.
func FriendlyError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	if failure.GetCode(err) == 422 ||
		strings.Contains(msg, "422") ||
		strings.Contains(strings.ToLower(msg), "validation") {
		return genericSubmitError
	}

	return msg
}

// Friendly applies the FriendlyError rewrite while keeping the status code
// and the field-keyed validation details intact.
func Friendly(err error) error {
	if err == nil {
		return nil
	}

	return &failure.Failure{
		Code:    failure.GetCode(err),
		Message: FriendlyError(err),
		Fields:  failure.GetFields(err),
	}
}
