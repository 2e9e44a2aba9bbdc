package booking_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sunstone/config"
	"sunstone/infras/otel/mocks"
	bookingMocks "sunstone/internal/domains/booking/mocks"
	"sunstone/internal/domains/booking/model"
	"sunstone/internal/domains/booking/model/dto"
	"sunstone/internal/domains/booking/service"
	"sunstone/internal/domains/booking/wizard"
	roomMocks "sunstone/internal/domains/room/mocks"
	roomModel "sunstone/internal/domains/room/model"
	bookingHandler "sunstone/internal/handlers/booking"
	cacheMocks "sunstone/shared/cache/mocks"
	"sunstone/shared/failure"
	"sunstone/transport/http/response"
)

func newPublicServer(t *testing.T) (*chi.Mux, *bookingMocks.MockBooking, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockGateway := bookingMocks.NewMockBooking(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	// mutations invalidate caches on a detached goroutine
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Backend.BookingToken = "static-booking-token"

	svc := service.New(mockGateway, mockRooms, cfg, mockCache, mocks.NewOtel())
	handler := bookingHandler.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.PublicRouter(router)

	return router, mockGateway, mockRooms
}

func postJSON(t *testing.T, router *chi.Mux, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	return recorder
}

func validCreatePayload() map[string]any {
	return map[string]any{
		"guest_name":     "Ada Obi",
		"guest_email":    "ada@example.com",
		"guest_phone":    "+2348000000000",
		"room_type_id":   "rt-1",
		"check_in_date":  "2026-03-07",
		"check_out_date": "2026-03-09",
		"rooms":          2,
		"payment_method": "paystack",
		"accept_terms":   true,
	}
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	t.Run("remote validation failure is rewritten for guests, fields kept", func(t *testing.T) {
		router, mockGateway, mockRooms := newPublicServer(t)

		mockRooms.EXPECT().
			ListPublic(gomock.Any()).
			Return([]roomModel.RoomType{{ID: "rt-1", BasePrice: 40000}}, nil)

		remoteErr := failure.Validation("The given data was invalid", map[string][]string{
			"check_in_date": {"The check in date field must be a date after today."},
		})

		mockGateway.EXPECT().
			Create(gomock.Any(), "static-booking-token", gomock.Any()).
			Return(model.Booking{}, remoteErr)

		recorder := postJSON(t, router, "/bookings", validCreatePayload())

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		var body response.Error
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

		require.NotNil(t, body.Error)
		assert.Equal(t, wizard.FriendlyError(remoteErr), *body.Error)
		assert.NotContains(t, *body.Error, "The given data was invalid")
		assert.Equal(t, []string{"The check in date field must be a date after today."}, body.Errors["check_in_date"])
	})

	t.Run("non-validation failures keep their message", func(t *testing.T) {
		router, mockGateway, mockRooms := newPublicServer(t)

		mockRooms.EXPECT().
			ListPublic(gomock.Any()).
			Return([]roomModel.RoomType{{ID: "rt-1", BasePrice: 40000}}, nil)

		mockGateway.EXPECT().
			Create(gomock.Any(), "static-booking-token", gomock.Any()).
			Return(model.Booking{}, failure.Conflict("room is already reserved"))

		recorder := postJSON(t, router, "/bookings", validCreatePayload())

		assert.Equal(t, http.StatusConflict, recorder.Code)

		var body response.Error
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

		require.NotNil(t, body.Error)
		assert.Contains(t, *body.Error, "room is already reserved")
	})

	t.Run("successful create responds with the created booking", func(t *testing.T) {
		router, mockGateway, mockRooms := newPublicServer(t)

		mockRooms.EXPECT().
			ListPublic(gomock.Any()).
			Return([]roomModel.RoomType{{ID: "rt-1", BasePrice: 40000}}, nil)

		mockGateway.EXPECT().
			Create(gomock.Any(), "static-booking-token", gomock.Any()).
			Return(model.Booking{ID: "b-1", Status: model.StatusPending}, nil)

		recorder := postJSON(t, router, "/bookings", validCreatePayload())

		// cache invalidation runs on a detached goroutine
		time.Sleep(10 * time.Millisecond)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"b-1"`)
	})
}

func TestBookingHandler_CheckAvailability(t *testing.T) {
	t.Run("validation-shaped backend failure is rewritten", func(t *testing.T) {
		router, mockGateway, _ := newPublicServer(t)

		mockGateway.EXPECT().
			Availability(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.AvailabilityResponse{}, failure.Remote(422, "validation failed for the requested stay"))

		recorder := postJSON(t, router, "/bookings/availability", map[string]any{
			"room_type_id":   "rt-1",
			"check_in_date":  "2026-03-07",
			"check_out_date": "2026-03-09",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		var body response.Error
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

		require.NotNil(t, body.Error)
		assert.NotContains(t, *body.Error, "validation failed")
		assert.Contains(t, *body.Error, "check your details")
	})
}
