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
	"sunstone/internal/domains/booking/wizard"
	roomMocks "sunstone/internal/domains/room/mocks"
	"sunstone/internal/domains/room/model"
	"sunstone/internal/domains/room/model/dto"
	"sunstone/internal/domains/room/service"
	sessionModel "sunstone/internal/domains/session/model"
	cacheMocks "sunstone/shared/cache/mocks"
	"sunstone/shared/failure"
)

func TestRoomService_ListPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockGateway, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantLen   int
		wantErr   bool
	}{
		{
			name: "cache miss fetches from backend",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockGateway.EXPECT().
					ListPublic(gomock.Any()).
					Return([]model.RoomType{
						{ID: "rt-1", Name: "Deluxe", BasePrice: 45000},
						{ID: "rt-2", Name: "Suite", BasePrice: 90000},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "cache hit skips backend",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, out any) error {
						res, ok := out.(*dto.GetRoomTypesResponse)
						if ok {
							res.RoomTypes = []dto.RoomTypeResponse{{ID: "rt-1"}}
						}
						return nil
					})
			},
			wantLen: 1,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ListPublic(context.Background())

			// cache writes happen on a detached goroutine
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.RoomTypes, tt.wantLen)
			}
		})
	}

	t.Run("backend error serves the static fallback list", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockGateway.EXPECT().
			ListPublic(gomock.Any()).
			Return(nil, errors.New("backend down"))

		res, err := svc.ListPublic(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res.RoomTypes, len(wizard.FallbackRooms))
		assert.Equal(t, "standard", res.RoomTypes[0].ID)
		assert.Equal(t, wizard.FallbackRooms[0].PricePerNight, res.RoomTypes[0].BasePrice)
		assert.Empty(t, res.RoomTypes[0].Rooms)
	})
}

func TestRoomService_AvailableRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockGateway, cfg, mockCache, mockOtel)

	session := sessionModel.Session{Token: "token-123"}

	types := []model.RoomType{
		{
			ID:   "rt-1",
			Name: "Deluxe",
			Rooms: []model.PhysicalRoom{
				{ID: "r-1", RoomNumber: "101", Status: model.RoomStatusAvailable, RoomTypeID: "rt-1"},
				{ID: "r-2", RoomNumber: "102", Status: model.RoomStatusOccupied, RoomTypeID: "rt-1"},
				{ID: "r-3", RoomNumber: "103", Status: model.RoomStatusDirty, RoomTypeID: "rt-1"},
				{ID: "r-4", RoomNumber: "104", Status: model.RoomStatusAvailable, RoomTypeID: "rt-1"},
			},
		},
		{
			ID:    "rt-2",
			Name:  "Suite",
			Rooms: []model.PhysicalRoom{{ID: "r-9", RoomNumber: "201", Status: model.RoomStatusAvailable, RoomTypeID: "rt-2"}},
		},
	}

	t.Run("filters to available units of the requested type", func(t *testing.T) {
		mockGateway.EXPECT().
			ListAdmin(gomock.Any(), "token-123").
			Return(types, nil)

		res, err := svc.AvailableRooms(context.Background(), session, "rt-1")

		assert.NoError(t, err)
		assert.Equal(t, "rt-1", res.RoomTypeID)
		assert.Len(t, res.Rooms, 2)
		assert.Equal(t, "r-1", res.Rooms[0].ID)
		assert.Equal(t, "r-4", res.Rooms[1].ID)
	})

	t.Run("unknown room type", func(t *testing.T) {
		mockGateway.EXPECT().
			ListAdmin(gomock.Any(), "token-123").
			Return(types, nil)

		_, err := svc.AvailableRooms(context.Background(), session, "rt-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("not authenticated", func(t *testing.T) {
		_, err := svc.AvailableRooms(context.Background(), sessionModel.Session{}, "rt-1")

		assert.ErrorIs(t, err, failure.NotAuthenticatedError)
	})
}

func TestRoomService_CreateType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockGateway, cfg, mockCache, mockOtel)

	req := dto.CreateRoomTypeRequest{Name: "Deluxe", BasePrice: 45000}

	tests := []struct {
		name      string
		session   sessionModel.Session
		setupMock func()
		wantErr   bool
	}{
		{
			name:    "successful creation invalidates room cache",
			session: sessionModel.Session{Token: "token-123"},
			setupMock: func() {
				mockGateway.EXPECT().
					CreateType(gomock.Any(), "token-123", req).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "not authenticated skips the backend",
			session:   sessionModel.Session{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:    "backend error",
			session: sessionModel.Session{Token: "token-123"},
			setupMock: func() {
				mockGateway.EXPECT().
					CreateType(gomock.Any(), "token-123", req).
					Return(failure.Conflict("room type already exists"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.CreateType(context.Background(), tt.session, req)

			// cache invalidation runs on a detached goroutine
			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
