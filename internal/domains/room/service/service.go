package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sunstone/config"
	"sunstone/infras/otel"
	"sunstone/internal/domains/booking/wizard"
	"sunstone/internal/domains/room/gateway"
	"sunstone/internal/domains/room/model"
	"sunstone/internal/domains/room/model/dto"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared"
	"sunstone/shared/cache"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
)

const (
	cacheRoomsPrefix = "rooms"
	cacheRoomsPublic = "rooms:public"
)

type Room interface {
	ListPublic(ctx context.Context) (dto.GetRoomTypesResponse, error)
	ListAdmin(ctx context.Context, session sessionModel.Session) (dto.GetRoomTypesResponse, error)
	CreateType(ctx context.Context, session sessionModel.Session, req dto.CreateRoomTypeRequest) error
	UpdateType(ctx context.Context, session sessionModel.Session, req dto.UpdateRoomTypeRequest, id string) error
	DeleteType(ctx context.Context, session sessionModel.Session, id string) error
	AvailableRooms(ctx context.Context, session sessionModel.Session, roomTypeID string) (dto.GetAvailableRoomsResponse, error)
	ListPhysical(ctx context.Context, session sessionModel.Session) ([]dto.PhysicalRoomResponse, error)
	CreatePhysical(ctx context.Context, session sessionModel.Session, req dto.CreatePhysicalRoomRequest) error
	UpdatePhysical(ctx context.Context, session sessionModel.Session, req dto.UpdatePhysicalRoomRequest, id string) error
	DeletePhysical(ctx context.Context, session sessionModel.Session, id string) error
}

type serviceImpl struct {
	gateway gateway.Room
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(gateway gateway.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		gateway: gateway,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) ListPublic(ctx context.Context) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ListPublic")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheRoomsPublic, &res)
	if err == nil {
		return res, nil
	}

	types, fetchErr := s.gateway.ListPublic(ctx)
	if fetchErr != nil {
		scope.TraceError(fetchErr)
		log.Error().Err(fetchErr).Msg("failed to fetch public rooms, serving the fallback list")

		return fallbackRoomTypes(), nil
	}

	res.FromModels(types)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRoomsPublic, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

// fallbackRoomTypes maps the booking flow's static room list into the public
// rooms shape. It is served only when the live fetch fails and is never
// cached, so the real list returns as soon as the backend recovers.
func fallbackRoomTypes() dto.GetRoomTypesResponse {
	res := dto.GetRoomTypesResponse{
		RoomTypes: make([]dto.RoomTypeResponse, len(wizard.FallbackRooms)),
	}

	for i, option := range wizard.FallbackRooms {
		res.RoomTypes[i] = dto.RoomTypeResponse{
			ID:        option.RoomTypeID,
			Name:      option.Name,
			BasePrice: option.PricePerNight,
			Amenities: []string{},
			Rooms:     []dto.PhysicalRoomResponse{},
		}
	}

	return res
}

func (s *serviceImpl) ListAdmin(ctx context.Context, session sessionModel.Session) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ListAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	types, err := s.gateway.ListAdmin(ctx, session.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch room types")

		return res, fmt.Errorf("failed to fetch room types: %w", err)
	}

	res.FromModels(types)

	return res, nil
}

func (s *serviceImpl) CreateType(ctx context.Context, session sessionModel.Session, req dto.CreateRoomTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.CreateType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.CreateType(ctx, session.Token, req); err != nil {
		log.Error().Err(err).Msg("failed to create room type")

		return fmt.Errorf("failed to create room type: %w", err)
	}

	s.invalidateRooms(ctx)

	return nil
}

func (s *serviceImpl) UpdateType(ctx context.Context, session sessionModel.Session, req dto.UpdateRoomTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UpdateType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.UpdateType(ctx, session.Token, id, req); err != nil {
		log.Error().Err(err).Str("room_type_id", id).Msg("failed to update room type")

		return fmt.Errorf("failed to update room type: %w", err)
	}

	s.invalidateRooms(ctx)

	return nil
}

func (s *serviceImpl) DeleteType(ctx context.Context, session sessionModel.Session, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.DeleteType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.DeleteType(ctx, session.Token, id); err != nil {
		log.Error().Err(err).Str("room_type_id", id).Msg("failed to delete room type")

		return fmt.Errorf("failed to delete room type: %w", err)
	}

	s.invalidateRooms(ctx)

	return nil
}

// AvailableRooms returns only the Available units of the requested type. The
// edit form calls this every time its room-type selection changes so a
// previously chosen room from another type can never leak through.
func (s *serviceImpl) AvailableRooms(ctx context.Context, session sessionModel.Session, roomTypeID string) (res dto.GetAvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.AvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	roomType, err := s.findType(ctx, session.Token, roomTypeID)
	if err != nil {
		return res, err
	}

	res.RoomTypeID = roomType.ID

	available := roomType.AvailableRooms()
	res.Rooms = make([]dto.PhysicalRoomResponse, len(available))
	for i, room := range available {
		res.Rooms[i].FromModel(room)
	}

	return res, nil
}

func (s *serviceImpl) ListPhysical(ctx context.Context, session sessionModel.Session) (res []dto.PhysicalRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ListPhysical")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return nil, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	rooms, err := s.gateway.ListPhysical(ctx, session.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch physical rooms")

		return nil, fmt.Errorf("failed to fetch physical rooms: %w", err)
	}

	res = make([]dto.PhysicalRoomResponse, len(rooms))
	for i, room := range rooms {
		res[i].FromModel(room)
	}

	return res, nil
}

func (s *serviceImpl) CreatePhysical(ctx context.Context, session sessionModel.Session, req dto.CreatePhysicalRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.CreatePhysical")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.CreatePhysical(ctx, session.Token, req); err != nil {
		log.Error().Err(err).Msg("failed to create physical room")

		return fmt.Errorf("failed to create physical room: %w", err)
	}

	s.invalidateRooms(ctx)

	return nil
}

func (s *serviceImpl) UpdatePhysical(ctx context.Context, session sessionModel.Session, req dto.UpdatePhysicalRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UpdatePhysical")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.UpdatePhysical(ctx, session.Token, id, req); err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to update physical room")

		return fmt.Errorf("failed to update physical room: %w", err)
	}

	s.invalidateRooms(ctx)

	return nil
}

func (s *serviceImpl) DeletePhysical(ctx context.Context, session sessionModel.Session, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.DeletePhysical")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.DeletePhysical(ctx, session.Token, id); err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to delete physical room")

		return fmt.Errorf("failed to delete physical room: %w", err)
	}

	s.invalidateRooms(ctx)

	return nil
}

func (s *serviceImpl) findType(ctx context.Context, token, roomTypeID string) (model.RoomType, error) {
	types, err := s.gateway.ListAdmin(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch room types")

		return model.RoomType{}, fmt.Errorf("failed to fetch room types: %w", err)
	}

	for _, roomType := range types {
		if roomType.ID == roomTypeID {
			return roomType, nil
		}
	}

	return model.RoomType{}, failure.NotFound("room type not found") //nolint:wrapcheck
}

func (s *serviceImpl) invalidateRooms(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheRoomsPrefix)
	}()
}
