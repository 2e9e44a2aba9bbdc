package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sunstone/config"
	"sunstone/infras/otel"
	"sunstone/internal/domains/gallery/gateway"
	"sunstone/internal/domains/gallery/model/dto"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared"
	"sunstone/shared/cache"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
)

const (
	cacheGalleryPrefix = "gallery"
	cacheGalleryList   = "gallery:list"
)

type Gallery interface {
	List(ctx context.Context) (dto.GetImagesResponse, error)
	Create(ctx context.Context, session sessionModel.Session, req dto.CreateImageRequest) (dto.ImageResponse, error)
	Delete(ctx context.Context, session sessionModel.Session, id string) error
}

type serviceImpl struct {
	gateway gateway.Gallery
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(gateway gateway.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Gallery {
	return &serviceImpl{
		gateway: gateway,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGalleryList, &res)
	if err == nil {
		return res, nil
	}

	images, err := s.gateway.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch gallery")

		return res, fmt.Errorf("failed to fetch gallery: %w", err)
	}

	res.FromModels(images)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGalleryList, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, session sessionModel.Session, req dto.CreateImageRequest) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	image, err := s.gateway.Create(ctx, session.Token, req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("failed to upload gallery image")

		return res, fmt.Errorf("failed to upload gallery image: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(image)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, session sessionModel.Session, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.Delete(ctx, session.Token, id); err != nil {
		log.Error().Err(err).Str("image_id", id).Msg("failed to delete gallery image")

		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGalleryPrefix)
	}()
}
