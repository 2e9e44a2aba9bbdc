package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sunstone/config"
	"sunstone/infras/otel"
	"sunstone/internal/domains/booking/gateway"
	"sunstone/internal/domains/booking/model"
	"sunstone/internal/domains/booking/model/dto"
	roomGateway "sunstone/internal/domains/room/gateway"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared"
	"sunstone/shared/cache"
	"sunstone/shared/constant"
	"sunstone/shared/dates"
	gDto "sunstone/shared/dto"
	"sunstone/shared/failure"
)

const (
	cacheBookingsPrefix = "bookings"
	cacheGetBooking     = "bookings:get"
	cacheGetAllBookings = "bookings:gets"

	// checkout frees a room backend-side, so the analytics snapshot is
	// stale the moment it succeeds
	cacheDashboardPrefix = "dashboard"
)

type Booking interface {
	Create(ctx context.Context, session sessionModel.Session, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Availability(ctx context.Context, session sessionModel.Session, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	List(ctx context.Context, session sessionModel.Session, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, session sessionModel.Session, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, session sessionModel.Session, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	SetStatus(ctx context.Context, session sessionModel.Session, req dto.SetStatusRequest, id string) (dto.BookingResponse, error)
	Confirm(ctx context.Context, session sessionModel.Session, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, session sessionModel.Session, id string) error
	Checkout(ctx context.Context, session sessionModel.Session, id string) error
	SendEmail(ctx context.Context, session sessionModel.Session, req dto.SendEmailRequest, id string) error
}

type serviceImpl struct {
	gateway     gateway.Booking
	roomGateway roomGateway.Room
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(gateway gateway.Booking, roomGateway roomGateway.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		gateway:     gateway,
		roomGateway: roomGateway,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create is intentionally public: without a session it falls back to the
// static booking token so the website wizard can submit unauthenticated.
// The amount is derived here from the room type's live base price, never
// trusted from the client.
func (s *serviceImpl) Create(ctx context.Context, session sessionModel.Session, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := dates.ParseISO(req.CheckInDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check-in date") //nolint:wrapcheck
	}

	checkOut, err := dates.ParseISO(req.CheckOutDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check-out date") //nolint:wrapcheck
	}

	nights := dates.Nights(checkIn, checkOut)
	if nights < 1 {
		return res, failure.BadRequestFromString("check-out date must be after check-in") //nolint:wrapcheck
	}

	basePrice, err := s.basePriceFor(ctx, req.RoomTypeID)
	if err != nil {
		return res, err
	}

	remoteCheckIn, _ := dates.ToRemote(req.CheckInDate)
	remoteCheckOut, _ := dates.ToRemote(req.CheckOutDate)

	remoteReq := dto.RemoteCreateBookingRequest{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		RoomTypeID:      req.RoomTypeID,
		CheckInDate:     remoteCheckIn,
		CheckOutDate:    remoteCheckOut,
		Rooms:           req.Rooms,
		Amount:          basePrice * float64(nights) * float64(req.Rooms),
		PaymentMethod:   req.PaymentMethod,
		SpecialRequests: req.SpecialRequests,
	}

	booking, err := s.gateway.Create(ctx, s.tokenFor(session), remoteReq)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, cacheBookingsPrefix, cacheDashboardPrefix)

	res.FromModel(booking)

	return res, nil
}

// Availability is public like Create and degrades to the static token.
func (s *serviceImpl) Availability(ctx context.Context, session sessionModel.Session, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.gateway.Availability(ctx, s.tokenFor(session), req)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, session sessionModel.Session, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBookings, params)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, total, err := s.gateway.List(ctx, session.Token, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch bookings")

		return res, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	res.FromModels(bookings, total, params)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, session sessionModel.Session, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	booking, err := s.gateway.Get(ctx, session.Token, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to fetch booking")

		return res, fmt.Errorf("failed to fetch booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

// Update patches only the submitted fields. Changing the room type drops the
// assigned physical room unless it also belongs to the new type, so a unit
// from the old type can never stay attached.
func (s *serviceImpl) Update(ctx context.Context, session sessionModel.Session, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	current, err := s.gateway.Get(ctx, session.Token, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to fetch booking for update")

		return res, fmt.Errorf("failed to fetch booking: %w", err)
	}

	patch, err := s.buildPatch(ctx, session.Token, current, req)
	if err != nil {
		return res, err
	}

	booking, err := s.gateway.Update(ctx, session.Token, id, patch)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, cacheBookingsPrefix)

	res.FromModel(booking)

	return res, nil
}

// SetStatus stays permissive apart from rejecting a same-status no-op; the
// remote API remains the authority on which moves are legal.
func (s *serviceImpl) SetStatus(ctx context.Context, session sessionModel.Session, req dto.SetStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	current, err := s.gateway.Get(ctx, session.Token, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to fetch booking for status change")

		return res, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if current.Status == req.Status {
		return res, failure.Conflict(fmt.Sprintf("booking is already %s", req.Status)) //nolint:wrapcheck
	}

	booking, err := s.gateway.Update(ctx, session.Token, id, map[string]any{"status": req.Status})
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Str("status", req.Status).Msg("failed to change booking status")

		return res, fmt.Errorf("failed to change booking status: %w", err)
	}

	s.invalidate(ctx, cacheBookingsPrefix, cacheDashboardPrefix)

	res.FromModel(booking)

	return res, nil
}

// Confirm is pending→confirmed sugar and, unlike SetStatus, does enforce the
// workflow edge locally.
func (s *serviceImpl) Confirm(ctx context.Context, session sessionModel.Session, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	current, err := s.gateway.Get(ctx, session.Token, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to fetch booking for confirmation")

		return res, fmt.Errorf("failed to fetch booking: %w", err)
	}

	if !model.CanTransition(current.Status, model.StatusConfirmed) {
		return res, failure.Conflict(fmt.Sprintf("cannot confirm a %s booking", current.Status)) //nolint:wrapcheck
	}

	booking, err := s.gateway.Update(ctx, session.Token, id, map[string]any{"status": model.StatusConfirmed})
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to confirm booking")

		return res, fmt.Errorf("failed to confirm booking: %w", err)
	}

	s.invalidate(ctx, cacheBookingsPrefix, cacheDashboardPrefix)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, session sessionModel.Session, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.Cancel(ctx, session.Token, id); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.invalidate(ctx, cacheBookingsPrefix, cacheDashboardPrefix)

	return nil
}

func (s *serviceImpl) Checkout(ctx context.Context, session sessionModel.Session, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.Checkout(ctx, session.Token, id); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to check out booking")

		return fmt.Errorf("failed to check out booking: %w", err)
	}

	s.invalidate(ctx, cacheBookingsPrefix, cacheDashboardPrefix)

	return nil
}

func (s *serviceImpl) SendEmail(ctx context.Context, session sessionModel.Session, req dto.SendEmailRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SendEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return failure.NotAuthenticatedError //nolint:wrapcheck
	}

	if err = s.gateway.SendEmail(ctx, session.Token, id, req); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to send booking email")

		return fmt.Errorf("failed to send booking email: %w", err)
	}

	return nil
}

func (s *serviceImpl) tokenFor(session sessionModel.Session) string {
	if session.Authenticated() {
		return session.Token
	}

	return s.cfg.Backend.BookingToken
}

func (s *serviceImpl) basePriceFor(ctx context.Context, roomTypeID string) (float64, error) {
	types, err := s.roomGateway.ListPublic(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch room types for pricing")

		return 0, fmt.Errorf("failed to fetch room types: %w", err)
	}

	for _, roomType := range types {
		if roomType.ID == roomTypeID {
			return roomType.BasePrice, nil
		}
	}

	return 0, failure.BadRequestFromString("unknown room type") //nolint:wrapcheck
}

func (s *serviceImpl) buildPatch(ctx context.Context, token string, current model.Booking, req dto.UpdateBookingRequest) (map[string]any, error) {
	patch := map[string]any{}

	if req.GuestName != constant.Empty {
		patch["guest_name"] = req.GuestName
	}

	if req.GuestEmail != constant.Empty {
		patch["guest_email"] = req.GuestEmail
	}

	if req.GuestPhone != constant.Empty {
		patch["guest_phone"] = req.GuestPhone
	}

	if req.CheckInDate != constant.Empty {
		remote, err := dates.ToRemote(req.CheckInDate)
		if err != nil {
			return nil, failure.BadRequestFromString("invalid check-in date") //nolint:wrapcheck
		}

		patch["check_in_date"] = remote
	}

	if req.CheckOutDate != constant.Empty {
		remote, err := dates.ToRemote(req.CheckOutDate)
		if err != nil {
			return nil, failure.BadRequestFromString("invalid check-out date") //nolint:wrapcheck
		}

		patch["check_out_date"] = remote
	}

	if req.Amount > 0 {
		patch["amount"] = req.Amount
	}

	if req.RoomID != nil {
		patch["room_id"] = *req.RoomID
	}

	if req.RoomTypeID != constant.Empty && req.RoomTypeID != current.RoomTypeID {
		patch["room_type_id"] = req.RoomTypeID

		keep, err := s.roomBelongsToType(ctx, token, req.RoomID, current.RoomID, req.RoomTypeID)
		if err != nil {
			return nil, err
		}

		if !keep {
			patch["room_id"] = nil
		}
	}

	return patch, nil
}

// roomBelongsToType checks whichever room id would end up on the booking
// against the target type's unit list.
func (s *serviceImpl) roomBelongsToType(ctx context.Context, token string, requested, current *string, roomTypeID string) (bool, error) {
	roomID := current
	if requested != nil {
		roomID = requested
	}

	if roomID == nil || *roomID == constant.Empty {
		return false, nil
	}

	types, err := s.roomGateway.ListAdmin(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch room types for room check")

		return false, fmt.Errorf("failed to fetch room types: %w", err)
	}

	for _, roomType := range types {
		if roomType.ID == roomTypeID {
			return roomType.HasRoom(*roomID), nil
		}
	}

	return false, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, prefix := range prefixes {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}
