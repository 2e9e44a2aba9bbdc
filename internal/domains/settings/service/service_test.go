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
	sessionModel "sunstone/internal/domains/session/model"
	settingsMocks "sunstone/internal/domains/settings/mocks"
	"sunstone/internal/domains/settings/model"
	"sunstone/internal/domains/settings/service"
	cacheMocks "sunstone/shared/cache/mocks"
	"sunstone/shared/failure"
)

func newSettingsService(t *testing.T) (service.Settings, *settingsMocks.MockSettings, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockGateway := settingsMocks.NewMockSettings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Backend.BookingToken = "static-site-token"

	return service.New(mockGateway, cfg, mockCache, mocks.NewOtel()), mockGateway, mockCache
}

func TestSettingsService_Get(t *testing.T) {
	t.Run("public read falls back to the static token and merges defaults", func(t *testing.T) {
		svc, mockGateway, mockCache := newSettingsService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockGateway.EXPECT().
			Fetch(gomock.Any(), "static-site-token").
			Return(model.Remote{
				"general": {{Key: "name", Value: "Marigold Suites"}},
			}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), sessionModel.Session{})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "Marigold Suites", res.General.Name)
		assert.Equal(t, "NGN", res.General.Currency)
	})

	t.Run("admin read uses the session token", func(t *testing.T) {
		svc, mockGateway, mockCache := newSettingsService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockGateway.EXPECT().
			Fetch(gomock.Any(), "admin-token").
			Return(model.Remote{}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), sessionModel.Session{Token: "admin-token"})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.Defaults(), res)
	})

	t.Run("cache hit skips the backend", func(t *testing.T) {
		svc, _, mockCache := newSettingsService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, out any) error {
				hotel, ok := out.(*model.Hotel)
				assert.True(t, ok)

				*hotel = model.Defaults()

				return nil
			})

		res, err := svc.Get(context.Background(), sessionModel.Session{})

		assert.NoError(t, err)
		assert.Equal(t, "Sunstone Hotel", res.General.Name)
	})
}

func TestSettingsService_Update(t *testing.T) {
	t.Run("unauthenticated update is refused before the network", func(t *testing.T) {
		svc, _, _ := newSettingsService(t)

		err := svc.Update(context.Background(), sessionModel.Session{}, model.Defaults())

		assert.ErrorIs(t, err, failure.NotAuthenticatedError)
	})

	t.Run("update saves the flattened blob and invalidates the cache", func(t *testing.T) {
		svc, mockGateway, mockCache := newSettingsService(t)

		hotel := model.Defaults()
		hotel.General.Name = "Marigold Suites"

		mockGateway.EXPECT().
			Save(gomock.Any(), "admin-token", hotel.ToRemote()).
			Return(nil)

		cleared := make(chan string, 1)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) error {
				cleared <- key

				return nil
			})

		err := svc.Update(context.Background(), sessionModel.Session{Token: "admin-token"}, hotel)

		assert.NoError(t, err)

		select {
		case key := <-cleared:
			assert.Equal(t, "settings:*", key)
		case <-time.After(time.Second):
			t.Fatal("cache was never invalidated")
		}
	})
}
