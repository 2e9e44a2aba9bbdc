package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sunstone/config"
	"sunstone/infras/otel"
	"sunstone/internal/domains/dashboard/gateway"
	"sunstone/internal/domains/dashboard/model"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared/cache"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
)

// Keyed under the prefix the booking service invalidates on checkout and
// status changes.
const cacheAnalytics = "dashboard:analytics"

type Dashboard interface {
	Analytics(ctx context.Context, session sessionModel.Session) (model.Analytics, error)
}

type serviceImpl struct {
	gateway gateway.Dashboard
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(gateway gateway.Dashboard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		gateway: gateway,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Analytics(ctx context.Context, session sessionModel.Session) (res model.Analytics, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Analytics")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	err = s.cache.Get(ctx, cacheAnalytics, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.gateway.Analytics(ctx, session.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch analytics")

		return res, fmt.Errorf("failed to fetch analytics: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheAnalytics, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save analytics to cache")
		}
	}()

	return res, nil
}
