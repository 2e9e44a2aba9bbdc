package wizard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sunstone/internal/domains/booking/model"
	"sunstone/internal/domains/booking/wizard"
	"sunstone/shared/dates"
	"sunstone/shared/failure"
)

func futureDate(daysAhead int) time.Time {
	return dates.Today().AddDate(0, 0, daysAhead)
}

func TestWizard_DateRules(t *testing.T) {
	t.Run("check-in in the past is rejected", func(t *testing.T) {
		w := wizard.New()

		err := w.SetCheckIn(dates.Today().AddDate(0, 0, -1))

		assert.Error(t, err)
	})

	t.Run("setting check-in defaults check-out to the next day", func(t *testing.T) {
		w := wizard.New()

		assert.NoError(t, w.SetCheckIn(futureDate(3)))
		w.SelectRoom(wizard.FallbackRooms[0])

		summary, ok := w.Summary()
		assert.True(t, ok)
		assert.Equal(t, 1, summary.Nights)
	})

	t.Run("check-in moving past check-out drags check-out forward", func(t *testing.T) {
		w := wizard.New()

		assert.NoError(t, w.SetCheckIn(futureDate(3)))
		assert.NoError(t, w.SetCheckOut(futureDate(5)))
		assert.NoError(t, w.SetCheckIn(futureDate(7)))

		w.SelectRoom(wizard.FallbackRooms[0])

		summary, ok := w.Summary()
		assert.True(t, ok)
		assert.Equal(t, 1, summary.Nights)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		w := wizard.New()

		assert.NoError(t, w.SetCheckIn(futureDate(5)))
		assert.Error(t, w.SetCheckOut(futureDate(5)))
		assert.Error(t, w.SetCheckOut(futureDate(4)))
	})

	t.Run("check-out without check-in is rejected", func(t *testing.T) {
		w := wizard.New()

		assert.Error(t, w.SetCheckOut(futureDate(5)))
	})
}

func TestWizard_RoomCount(t *testing.T) {
	w := wizard.New()

	assert.Equal(t, 1, w.RoomCount())

	w.DecrementRooms()
	assert.Equal(t, 1, w.RoomCount(), "room count never drops below one")

	w.IncrementRooms()
	w.IncrementRooms()
	assert.Equal(t, 3, w.RoomCount())

	w.DecrementRooms()
	assert.Equal(t, 2, w.RoomCount())
}

func TestWizard_Summary(t *testing.T) {
	w := wizard.New()

	_, ok := w.Summary()
	assert.False(t, ok, "no summary before dates and room are set")

	assert.NoError(t, w.SetCheckIn(futureDate(10)))
	assert.NoError(t, w.SetCheckOut(futureDate(13)))

	_, ok = w.Summary()
	assert.False(t, ok, "no summary before a room is selected")

	w.SelectRoom(wizard.RoomOption{RoomTypeID: "rt-1", Name: "Deluxe", PricePerNight: 55000})
	w.IncrementRooms() // 2 rooms

	summary, ok := w.Summary()
	assert.True(t, ok)
	assert.Equal(t, 3, summary.Nights)
	assert.Equal(t, float64(55000*3*2), summary.Subtotal)
	assert.Zero(t, summary.Taxes)
	assert.Equal(t, summary.Subtotal, summary.Total)
}

func TestWizard_StepGating(t *testing.T) {
	w := wizard.New()

	assert.Equal(t, wizard.StepRoomAndDates, w.Step())
	assert.Error(t, w.Advance(), "cannot advance without dates and room")

	assert.NoError(t, w.SetCheckIn(futureDate(2)))
	w.SelectRoom(wizard.FallbackRooms[1])
	assert.NoError(t, w.Advance())
	assert.Equal(t, wizard.StepGuestDetails, w.Step())

	assert.Error(t, w.Advance(), "guest details required")

	w.SetGuestDetails("Ada", "Obi", "ada@example.com", "+2348000000000", "")
	assert.NoError(t, w.Advance())
	assert.Equal(t, wizard.StepPayment, w.Step())

	assert.Error(t, w.Advance(), "payment method and terms required")

	assert.NoError(t, w.SetPaymentMethod(wizard.PaymentPaystack))
	assert.Error(t, w.Advance(), "terms still unaccepted")

	w.AcceptTerms(true)
	assert.True(t, w.CanAdvance())

	w.Back()
	assert.Equal(t, wizard.StepGuestDetails, w.Step())
	w.Back()
	assert.Equal(t, wizard.StepRoomAndDates, w.Step())
	w.Back()
	assert.Equal(t, wizard.StepRoomAndDates, w.Step(), "back stops at the first step")
}

func TestWizard_SetPaymentMethod(t *testing.T) {
	w := wizard.New()

	assert.NoError(t, w.SetPaymentMethod(wizard.PaymentBankTransfer))
	assert.NoError(t, w.SetPaymentMethod(wizard.PaymentPayAtHotel))
	assert.Error(t, w.SetPaymentMethod("crypto"))
}

func TestWizard_BuildCreateRequest(t *testing.T) {
	w := wizard.New()

	checkIn := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	if checkIn.Before(dates.Today()) {
		checkIn = futureDate(30)
	}

	assert.NoError(t, w.SetCheckIn(checkIn))
	assert.NoError(t, w.SetCheckOut(checkIn.AddDate(0, 0, 2)))
	w.SelectRoom(wizard.RoomOption{RoomTypeID: "rt-1", Name: "Deluxe", PricePerNight: 40000})
	assert.NoError(t, w.Advance())

	w.SetGuestDetails("Ada", "Obi", "ada@example.com", "+2348000000000", "late arrival")
	assert.NoError(t, w.Advance())

	_, err := w.BuildCreateRequest()
	assert.Error(t, err, "not ready before payment method and terms")

	assert.NoError(t, w.SetPaymentMethod(wizard.PaymentPaystack))
	w.AcceptTerms(true)

	req, err := w.BuildCreateRequest()
	assert.NoError(t, err)

	assert.Equal(t, "Ada Obi", req.GuestName)
	assert.Equal(t, "rt-1", req.RoomTypeID)
	assert.Equal(t, checkIn.Format("02-01-2006"), req.CheckInDate)
	assert.Equal(t, checkIn.AddDate(0, 0, 2).Format("02-01-2006"), req.CheckOutDate)
	assert.Equal(t, float64(40000*2), req.Amount)
	assert.Equal(t, "paystack", req.PaymentMethod)
	assert.Equal(t, "late arrival", req.SpecialRequests)
}

func TestWizard_Complete(t *testing.T) {
	w := wizard.New()

	_, ok := w.Created()
	assert.False(t, ok)

	w.Complete(model.Booking{ID: "b-1", Status: model.StatusPending})

	created, ok := w.Created()
	assert.True(t, ok)
	assert.Equal(t, "b-1", created.ID)
}

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "validation failure is rewritten",
			err:  failure.Validation("validation failed", map[string][]string{"guest_email": {"invalid"}}),
			want: "We couldn't complete your booking. Please check your details — the room may no longer be available for those dates.",
		},
		{
			name: "message mentioning 422 is rewritten",
			err:  failure.BadGateway("backend returned a non-JSON response (status 422)"),
			want: "We couldn't complete your booking. Please check your details — the room may no longer be available for those dates.",
		},
		{
			name: "other failures pass through",
			err:  failure.Conflict("room already booked for those dates"),
			want: "room already booked for those dates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wizard.FriendlyError(tt.err))
		})
	}
}

func TestFriendly(t *testing.T) {
	t.Run("keeps the status code and fields while rewriting the message", func(t *testing.T) {
		fields := map[string][]string{"check_in_date": {"must be a date after today"}}

		err := wizard.Friendly(failure.Validation("The given data was invalid", fields))

		assert.Equal(t, 422, failure.GetCode(err))
		assert.Equal(t, fields, failure.GetFields(err))
		assert.NotContains(t, err.Error(), "The given data was invalid")
		assert.Equal(t, wizard.FriendlyError(failure.Validation("The given data was invalid", fields)), err.Error())
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, wizard.Friendly(nil))
	})
}
