package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sunstone/config"
	"sunstone/infras/otel/mocks"
	bookingMocks "sunstone/internal/domains/booking/mocks"
	"sunstone/internal/domains/booking/model"
	"sunstone/internal/domains/booking/model/dto"
	"sunstone/internal/domains/booking/service"
	roomMocks "sunstone/internal/domains/room/mocks"
	roomModel "sunstone/internal/domains/room/model"
	sessionModel "sunstone/internal/domains/session/model"
	cacheMocks "sunstone/shared/cache/mocks"
	gDto "sunstone/shared/dto"
	"sunstone/shared/failure"
)

type bookingMockSet struct {
	gateway *bookingMocks.MockBooking
	rooms   *roomMocks.MockRoom
	cache   *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	set := bookingMockSet{
		gateway: bookingMocks.NewMockBooking(ctrl),
		rooms:   roomMocks.NewMockRoom(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Backend.BookingToken = "static-booking-token"

	svc := service.New(set.gateway, set.rooms, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		GuestName:     "Ada Obi",
		GuestEmail:    "ada@example.com",
		GuestPhone:    "+2348000000000",
		RoomTypeID:    "rt-1",
		CheckInDate:   "2026-03-07",
		CheckOutDate:  "2026-03-09",
		Rooms:         2,
		PaymentMethod: "paystack",
		AcceptTerms:   true,
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("unauthenticated create uses the static token and derives the amount", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.rooms.EXPECT().
			ListPublic(gomock.Any()).
			Return([]roomModel.RoomType{{ID: "rt-1", BasePrice: 40000}}, nil)

		set.gateway.EXPECT().
			Create(gomock.Any(), "static-booking-token", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req dto.RemoteCreateBookingRequest) (model.Booking, error) {
				assert.Equal(t, "07-03-2026", req.CheckInDate)
				assert.Equal(t, "09-03-2026", req.CheckOutDate)
				assert.Equal(t, float64(40000*2*2), req.Amount, "base price x nights x rooms")

				return model.Booking{ID: "b-1", Status: model.StatusPending}, nil
			})

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Create(context.Background(), sessionModel.Session{}, validCreateRequest())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "b-1", res.ID)
		assert.ElementsMatch(t, []string{model.StatusConfirmed, model.StatusCancelled}, res.AllowedNext)
	})

	t.Run("authenticated create uses the session token", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.rooms.EXPECT().
			ListPublic(gomock.Any()).
			Return([]roomModel.RoomType{{ID: "rt-1", BasePrice: 40000}}, nil)

		set.gateway.EXPECT().
			Create(gomock.Any(), "admin-token", gomock.Any()).
			Return(model.Booking{ID: "b-2", Status: model.StatusPending}, nil)

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Create(context.Background(), sessionModel.Session{Token: "admin-token"}, validCreateRequest())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("unknown room type never reaches the backend", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.rooms.EXPECT().
			ListPublic(gomock.Any()).
			Return([]roomModel.RoomType{{ID: "rt-other", BasePrice: 40000}}, nil)

		_, err := svc.Create(context.Background(), sessionModel.Session{}, validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("inverted dates are rejected before any network call", func(t *testing.T) {
		svc, _ := newBookingService(t)

		req := validCreateRequest()
		req.CheckInDate = "2026-03-09"
		req.CheckOutDate = "2026-03-07"

		_, err := svc.Create(context.Background(), sessionModel.Session{}, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("backend validation failure passes through with fields", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.rooms.EXPECT().
			ListPublic(gomock.Any()).
			Return([]roomModel.RoomType{{ID: "rt-1", BasePrice: 40000}}, nil)

		set.gateway.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.Booking{}, failure.Validation("validation failed", map[string][]string{
				"guest_email": {"is invalid"},
			}))

		_, err := svc.Create(context.Background(), sessionModel.Session{}, validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
		assert.Equal(t, []string{"is invalid"}, failure.GetFields(err)["guest_email"])
	})
}

func TestBookingService_List(t *testing.T) {
	t.Run("unauthenticated list never touches the backend", func(t *testing.T) {
		svc, _ := newBookingService(t)

		_, err := svc.List(context.Background(), sessionModel.Session{}, gDto.QueryParams{Page: 1, Limit: 10})

		assert.ErrorIs(t, err, failure.NotAuthenticatedError)
	})

	t.Run("cache miss fetches and computes total pages", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.gateway.EXPECT().
			List(gomock.Any(), "admin-token", gomock.Any()).
			Return([]model.Booking{
				{ID: "b-1", Status: model.StatusPending},
				{ID: "b-2", Status: model.StatusCheckedOut},
			}, 25, nil)

		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.List(context.Background(), sessionModel.Session{Token: "admin-token"}, gDto.QueryParams{Page: 1, Limit: 10})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.Equal(t, 25, res.Total)
		assert.Equal(t, 3, res.TotalPage)
		assert.NotEmpty(t, res.Bookings[0].AllowedNext)
		assert.Empty(t, res.Bookings[1].AllowedNext, "terminal statuses offer no transitions")
	})
}

func TestBookingService_Update(t *testing.T) {
	session := sessionModel.Session{Token: "admin-token"}
	roomID := "r-old"

	t.Run("room type change clears a room of the old type", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.gateway.EXPECT().
			Get(gomock.Any(), "admin-token", "b-1").
			Return(model.Booking{ID: "b-1", RoomTypeID: "rt-1", RoomID: &roomID, Status: model.StatusConfirmed}, nil)

		set.rooms.EXPECT().
			ListAdmin(gomock.Any(), "admin-token").
			Return([]roomModel.RoomType{
				{ID: "rt-1", Rooms: []roomModel.PhysicalRoom{{ID: "r-old"}}},
				{ID: "rt-2", Rooms: []roomModel.PhysicalRoom{{ID: "r-new"}}},
			}, nil)

		set.gateway.EXPECT().
			Update(gomock.Any(), "admin-token", "b-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body any) (model.Booking, error) {
				patch, ok := body.(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "rt-2", patch["room_type_id"])

				cleared, present := patch["room_id"]
				assert.True(t, present)
				assert.Nil(t, cleared)

				return model.Booking{ID: "b-1", RoomTypeID: "rt-2", Status: model.StatusConfirmed}, nil
			})

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Update(context.Background(), session, dto.UpdateBookingRequest{RoomTypeID: "rt-2"}, "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("room type change keeps a room that belongs to the new type", func(t *testing.T) {
		svc, set := newBookingService(t)

		newRoom := "r-new"

		set.gateway.EXPECT().
			Get(gomock.Any(), "admin-token", "b-1").
			Return(model.Booking{ID: "b-1", RoomTypeID: "rt-1", Status: model.StatusConfirmed}, nil)

		set.rooms.EXPECT().
			ListAdmin(gomock.Any(), "admin-token").
			Return([]roomModel.RoomType{
				{ID: "rt-2", Rooms: []roomModel.PhysicalRoom{{ID: "r-new"}}},
			}, nil)

		set.gateway.EXPECT().
			Update(gomock.Any(), "admin-token", "b-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body any) (model.Booking, error) {
				patch, ok := body.(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "r-new", patch["room_id"])

				return model.Booking{ID: "b-1", RoomTypeID: "rt-2", RoomID: &newRoom, Status: model.StatusConfirmed}, nil
			})

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Update(context.Background(), session, dto.UpdateBookingRequest{RoomTypeID: "rt-2", RoomID: &newRoom}, "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("unchanged room type skips the room check", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.gateway.EXPECT().
			Get(gomock.Any(), "admin-token", "b-1").
			Return(model.Booking{ID: "b-1", RoomTypeID: "rt-1", Status: model.StatusConfirmed}, nil)

		set.gateway.EXPECT().
			Update(gomock.Any(), "admin-token", "b-1", gomock.Any()).
			Return(model.Booking{ID: "b-1", RoomTypeID: "rt-1", Status: model.StatusConfirmed}, nil)

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Update(context.Background(), session, dto.UpdateBookingRequest{GuestName: "New Name"}, "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})
}

func TestBookingService_SetStatus(t *testing.T) {
	session := sessionModel.Session{Token: "admin-token"}

	t.Run("same-status change is rejected without a patch", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.gateway.EXPECT().
			Get(gomock.Any(), "admin-token", "b-1").
			Return(model.Booking{ID: "b-1", Status: model.StatusConfirmed}, nil)

		_, err := svc.SetStatus(context.Background(), session, dto.SetStatusRequest{Status: model.StatusConfirmed}, "b-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("permissive otherwise even for workflow-illegal moves", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.gateway.EXPECT().
			Get(gomock.Any(), "admin-token", "b-1").
			Return(model.Booking{ID: "b-1", Status: model.StatusPending}, nil)

		set.gateway.EXPECT().
			Update(gomock.Any(), "admin-token", "b-1", map[string]any{"status": model.StatusCheckedIn}).
			Return(model.Booking{ID: "b-1", Status: model.StatusCheckedIn}, nil)

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.SetStatus(context.Background(), session, dto.SetStatusRequest{Status: model.StatusCheckedIn}, "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, res.Status)
	})
}

func TestBookingService_Confirm(t *testing.T) {
	session := sessionModel.Session{Token: "admin-token"}

	t.Run("confirms a pending booking", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.gateway.EXPECT().
			Get(gomock.Any(), "admin-token", "b-1").
			Return(model.Booking{ID: "b-1", Status: model.StatusPending}, nil)

		set.gateway.EXPECT().
			Update(gomock.Any(), "admin-token", "b-1", map[string]any{"status": model.StatusConfirmed}).
			Return(model.Booking{ID: "b-1", Status: model.StatusConfirmed}, nil)

		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Confirm(context.Background(), session, "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("refuses to confirm from a non-pending status", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.gateway.EXPECT().
			Get(gomock.Any(), "admin-token", "b-1").
			Return(model.Booking{ID: "b-1", Status: model.StatusCheckedOut}, nil)

		_, err := svc.Confirm(context.Background(), session, "b-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestBookingService_Checkout(t *testing.T) {
	t.Run("checkout invalidates bookings and dashboard caches", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.gateway.EXPECT().
			Checkout(gomock.Any(), "admin-token", "b-1").
			Return(nil)

		cleared := make(chan string, 4)
		set.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prefix string) error {
				cleared <- prefix
				return nil
			}).
			AnyTimes()

		err := svc.Checkout(context.Background(), sessionModel.Session{Token: "admin-token"}, "b-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)

		prefixes := map[string]bool{}
		for len(cleared) > 0 {
			prefixes[<-cleared] = true
		}
		assert.True(t, prefixes["bookings:*"])
		assert.True(t, prefixes["dashboard:*"])
	})

	t.Run("unauthenticated checkout is refused", func(t *testing.T) {
		svc, _ := newBookingService(t)

		err := svc.Checkout(context.Background(), sessionModel.Session{}, "b-1")

		assert.ErrorIs(t, err, failure.NotAuthenticatedError)
	})
}
