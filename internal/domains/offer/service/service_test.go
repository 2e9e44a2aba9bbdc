package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sunstone/config"
	"sunstone/infras/otel/mocks"
	offerMocks "sunstone/internal/domains/offer/mocks"
	"sunstone/internal/domains/offer/model"
	"sunstone/internal/domains/offer/model/dto"
	"sunstone/internal/domains/offer/service"
	sessionModel "sunstone/internal/domains/session/model"
	cacheMocks "sunstone/shared/cache/mocks"
	"sunstone/shared/failure"
)

func TestOfferService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := offerMocks.NewMockOffer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockGateway, cfg, mockCache, mocks.NewOtel())

	session := sessionModel.Session{Token: "token-123"}

	t.Run("valid offer is forwarded", func(t *testing.T) {
		req := dto.CreateOfferRequest{
			Title:           "Weekend special",
			DiscountPercent: 15,
			ValidFrom:       "2026-02-01",
			ValidUntil:      "2026-02-28",
		}

		mockGateway.EXPECT().
			Create(gomock.Any(), "token-123", req).
			Return(model.Offer{ID: "o-1", Title: "Weekend special"}, nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Create(context.Background(), session, req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "o-1", res.ID)
	})

	t.Run("inverted validity window is rejected", func(t *testing.T) {
		req := dto.CreateOfferRequest{
			Title:           "Backwards",
			DiscountPercent: 15,
			ValidFrom:       "2026-02-28",
			ValidUntil:      "2026-02-01",
		}

		_, err := svc.Create(context.Background(), session, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unauthenticated create is refused", func(t *testing.T) {
		_, err := svc.Create(context.Background(), sessionModel.Session{}, dto.CreateOfferRequest{})

		assert.ErrorIs(t, err, failure.NotAuthenticatedError)
	})
}
