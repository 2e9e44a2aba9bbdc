package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sunstone/config"
	"sunstone/infras/otel"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/internal/domains/settings/gateway"
	"sunstone/internal/domains/settings/model"
	"sunstone/shared"
	"sunstone/shared/cache"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
)

const (
	cacheSettingsPrefix = "settings"
	cacheSettingsHotel  = "settings:hotel"
)

type Settings interface {
	Get(ctx context.Context, session sessionModel.Session) (model.Hotel, error)
	Update(ctx context.Context, session sessionModel.Session, hotel model.Hotel) error
}

type serviceImpl struct {
	gateway gateway.Settings
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(gateway gateway.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		gateway: gateway,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// Get always returns a fully-populated Hotel: the remote blob is merged over
// the defaults, so a sparse backend response cannot produce empty settings.
// The public site reads settings too, so unauthenticated callers fall back to
// the shared booking token instead of being refused.
func (s *serviceImpl) Get(ctx context.Context, session sessionModel.Session) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSettingsHotel, &res)
	if err == nil {
		return res, nil
	}

	token := session.Token
	if !session.Authenticated() {
		token = s.cfg.Backend.BookingToken
	}

	remote, err := s.gateway.Fetch(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch settings")

		return res, fmt.Errorf("failed to fetch settings: %w", err)
	}

	res = model.FromRemote(remote)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSettingsHotel, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, session sessionModel.Session, hotel model.Hotel) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.Save(ctx, session.Token, hotel.ToRemote()); err != nil {
		log.Error().Err(err).Msg("failed to save settings")

		return fmt.Errorf("failed to save settings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSettingsPrefix)
	}()

	return nil
}
