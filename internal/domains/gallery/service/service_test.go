package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sunstone/config"
	"sunstone/infras/otel/mocks"
	galleryMocks "sunstone/internal/domains/gallery/mocks"
	"sunstone/internal/domains/gallery/model"
	"sunstone/internal/domains/gallery/model/dto"
	"sunstone/internal/domains/gallery/service"
	sessionModel "sunstone/internal/domains/session/model"
	cacheMocks "sunstone/shared/cache/mocks"
	"sunstone/shared/failure"
)

func TestGalleryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := galleryMocks.NewMockGallery(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockGateway, cfg, mockCache, mocks.NewOtel())

	req := dto.CreateImageRequest{
		Title:    "Pool at dusk",
		Category: "exterior",
		FileName: "pool.jpg",
		Content:  strings.NewReader("fake image bytes"),
	}

	t.Run("successful upload invalidates the gallery cache", func(t *testing.T) {
		mockGateway.EXPECT().
			Create(gomock.Any(), "token-123", req).
			Return(model.Image{ID: "img-1", Title: "Pool at dusk", ImageURL: "https://cdn.example.com/pool.jpg"}, nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Create(context.Background(), sessionModel.Session{Token: "token-123"}, req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "img-1", res.ID)
	})

	t.Run("unauthenticated upload is refused before the network", func(t *testing.T) {
		_, err := svc.Create(context.Background(), sessionModel.Session{}, req)

		assert.ErrorIs(t, err, failure.NotAuthenticatedError)
	})
}

func TestGalleryService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := galleryMocks.NewMockGallery(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockGateway, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockGateway.EXPECT().
		List(gomock.Any()).
		Return([]model.Image{{ID: "img-1"}, {ID: "img-2"}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.List(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Images, 2)
}
