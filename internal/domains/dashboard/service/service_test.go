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
	dashboardMocks "sunstone/internal/domains/dashboard/mocks"
	"sunstone/internal/domains/dashboard/model"
	"sunstone/internal/domains/dashboard/service"
	sessionModel "sunstone/internal/domains/session/model"
	cacheMocks "sunstone/shared/cache/mocks"
	"sunstone/shared/failure"
)

func TestDashboardService_Analytics(t *testing.T) {
	newService := func(t *testing.T) (service.Dashboard, *dashboardMocks.MockDashboard, *cacheMocks.MockRedisCache) {
		t.Helper()

		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockGateway := dashboardMocks.NewMockDashboard(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		cfg := &config.Config{}
		cfg.Cache.TTL = 3600

		return service.New(mockGateway, cfg, mockCache, mocks.NewOtel()), mockGateway, mockCache
	}

	t.Run("unauthenticated request is refused before the network", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Analytics(context.Background(), sessionModel.Session{})

		assert.ErrorIs(t, err, failure.NotAuthenticatedError)
	})

	t.Run("cache miss fetches from the backend and saves", func(t *testing.T) {
		svc, mockGateway, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockGateway.EXPECT().
			Analytics(gomock.Any(), "admin-token").
			Return(model.Analytics{OccupancyRate: 72.5, PendingBookings: 3}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Analytics(context.Background(), sessionModel.Session{Token: "admin-token"})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.InDelta(t, 72.5, res.OccupancyRate, 0.001)
		assert.Equal(t, 3, res.PendingBookings)
	})

	t.Run("backend failure is relayed", func(t *testing.T) {
		svc, mockGateway, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockGateway.EXPECT().
			Analytics(gomock.Any(), "admin-token").
			Return(model.Analytics{}, failure.BadGateway("analytics"))

		_, err := svc.Analytics(context.Background(), sessionModel.Session{Token: "admin-token"})

		assert.Error(t, err)
	})
}
