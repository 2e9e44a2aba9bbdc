package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sunstone/config"
	"sunstone/infras/otel"
	"sunstone/internal/domains/offer/gateway"
	"sunstone/internal/domains/offer/model/dto"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared"
	"sunstone/shared/cache"
	"sunstone/shared/constant"
	"sunstone/shared/dates"
	"sunstone/shared/failure"
)

const (
	cacheOffersPrefix = "offers"
	cacheOffersList   = "offers:list"
)

type Offer interface {
	List(ctx context.Context) (dto.GetOffersResponse, error)
	Create(ctx context.Context, session sessionModel.Session, req dto.CreateOfferRequest) (dto.OfferResponse, error)
	Update(ctx context.Context, session sessionModel.Session, req dto.UpdateOfferRequest, id string) (dto.OfferResponse, error)
	Delete(ctx context.Context, session sessionModel.Session, id string) error
}

type serviceImpl struct {
	gateway gateway.Offer
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(gateway gateway.Offer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Offer {
	return &serviceImpl{
		gateway: gateway,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheOffersList, &res)
	if err == nil {
		return res, nil
	}

	offers, err := s.gateway.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch offers")

		return res, fmt.Errorf("failed to fetch offers: %w", err)
	}

	res.FromModels(offers)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheOffersList, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save offers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, session sessionModel.Session, req dto.CreateOfferRequest) (res dto.OfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = validateWindow(req.ValidFrom, req.ValidUntil); err != nil {
		return res, err
	}

	offer, err := s.gateway.Create(ctx, session.Token, req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("failed to create offer")

		return res, fmt.Errorf("failed to create offer: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(offer)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, session sessionModel.Session, req dto.UpdateOfferRequest, id string) (res dto.OfferResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if req.ValidFrom != constant.Empty && req.ValidUntil != constant.Empty {
		if err = validateWindow(req.ValidFrom, req.ValidUntil); err != nil {
			return res, err
		}
	}

	offer, err := s.gateway.Update(ctx, session.Token, id, req)
	if err != nil {
		log.Error().Err(err).Str("offer_id", id).Msg("failed to update offer")

		return res, fmt.Errorf("failed to update offer: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(offer)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, session sessionModel.Session, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".offer.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.Delete(ctx, session.Token, id); err != nil {
		log.Error().Err(err).Str("offer_id", id).Msg("failed to delete offer")

		return fmt.Errorf("failed to delete offer: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func validateWindow(from, until string) error {
	start, err := dates.ParseISO(from)
	if err != nil {
		return failure.BadRequestFromString("invalid valid-from date") //nolint:wrapcheck
	}

	end, err := dates.ParseISO(until)
	if err != nil {
		return failure.BadRequestFromString("invalid valid-until date") //nolint:wrapcheck
	}

	if end.Before(start) {
		return failure.BadRequestFromString("offer validity window ends before it starts") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheOffersPrefix)
	}()
}
