package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sunstone/infras/otel"
	"sunstone/internal/domains/room/model/dto"
	"sunstone/internal/domains/room/service"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared/constant"
	"sunstone/shared/validator"
	"sunstone/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/rooms", handler.GetRooms)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Patch("/{id}", handler.UpdateRoomType)
		routerGroup.Delete("/{id}", handler.DeleteRoomType)
		routerGroup.Get("/{id}/available-rooms", handler.GetAvailableRooms)
	})

	router.Route("/physical-rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPhysicalRooms)
		routerGroup.Post("/", handler.CreatePhysicalRoom)
		routerGroup.Patch("/{id}", handler.UpdatePhysicalRoom)
		routerGroup.Delete("/{id}", handler.DeletePhysicalRoom)
	})
}

// GetRooms lists room types for the public website.
// @Summary List rooms
// @Tags Room
// @Produce json
// @Success 200 {object} dto.GetRoomTypesResponse "Room types"
// @Failure 502 {object} response.Error
// @Router /api/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.ListPublic(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomTypes lists room types with embedded physical rooms for the back
// office.
// @Summary List room types
// @Tags Room
// @Produce json
// @Success 200 {object} dto.GetRoomTypesResponse "Room types"
// @Failure 401 {object} response.Error
// @Router /api/admin/room-types [get]
// @Security CookieAuth
func (handler *Handler) GetRoomTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	session := sessionModel.FromRequest(request)

	res, err := handler.service.ListAdmin(ctx, session)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateRoomType adds a room type.
// @Summary Create a room type
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} response.Message "Room type created"
// @Failure 400 {object} response.Error
// @Router /api/admin/room-types [post]
// @Security CookieAuth
func (handler *Handler) CreateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate room type request")

		response.WithError(writer, err)

		return
	}

	session := sessionModel.FromRequest(request)

	if err := handler.service.CreateType(ctx, session, req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Room type created")
}

// UpdateRoomType updates a room type.
// @Summary Update a room type
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Update Room Type Request"
// @Success 200 {object} response.Message "Room type updated"
// @Router /api/admin/room-types/{id} [patch]
// @Security CookieAuth
func (handler *Handler) UpdateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	req := dto.UpdateRoomTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate room type update")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	if err := handler.service.UpdateType(ctx, session, req, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room type updated")
}

// DeleteRoomType removes a room type.
// @Summary Delete a room type
// @Tags Room
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Message "Room type deleted"
// @Router /api/admin/room-types/{id} [delete]
// @Security CookieAuth
func (handler *Handler) DeleteRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	if err := handler.service.DeleteType(ctx, session, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room type deleted")
}

// GetAvailableRooms lists the Available units of one room type; the booking
// edit form calls it on every type change.
// @Summary List available rooms of a type
// @Tags Room
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} dto.GetAvailableRoomsResponse "Available rooms"
// @Failure 404 {object} response.Error
// @Router /api/admin/room-types/{id}/available-rooms [get]
// @Security CookieAuth
func (handler *Handler) GetAvailableRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	res, err := handler.service.AvailableRooms(ctx, session, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPhysicalRooms lists all physical rooms.
// @Summary List physical rooms
// @Tags Room
// @Produce json
// @Success 200 {array} dto.PhysicalRoomResponse "Physical rooms"
// @Router /api/admin/physical-rooms [get]
// @Security CookieAuth
func (handler *Handler) GetPhysicalRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhysicalRooms")
	defer scope.End()

	session := sessionModel.FromRequest(request)

	res, err := handler.service.ListPhysical(ctx, session)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreatePhysicalRoom adds a numbered unit.
// @Summary Create a physical room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreatePhysicalRoomRequest true "Create Physical Room Request"
// @Success 201 {object} response.Message "Physical room created"
// @Failure 400 {object} response.Error
// @Router /api/admin/physical-rooms [post]
// @Security CookieAuth
func (handler *Handler) CreatePhysicalRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePhysicalRoom")
	defer scope.End()

	req := dto.CreatePhysicalRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate physical room request")

		response.WithError(writer, err)

		return
	}

	session := sessionModel.FromRequest(request)

	if err := handler.service.CreatePhysical(ctx, session, req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Physical room created")
}

// UpdatePhysicalRoom updates a unit, including its housekeeping status.
// @Summary Update a physical room
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Physical Room ID"
// @Param request body dto.UpdatePhysicalRoomRequest true "Update Physical Room Request"
// @Success 200 {object} response.Message "Physical room updated"
// @Router /api/admin/physical-rooms/{id} [patch]
// @Security CookieAuth
func (handler *Handler) UpdatePhysicalRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePhysicalRoom")
	defer scope.End()

	req := dto.UpdatePhysicalRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate physical room update")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	if err := handler.service.UpdatePhysical(ctx, session, req, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Physical room updated")
}

// DeletePhysicalRoom removes a unit.
// @Summary Delete a physical room
// @Tags Room
// @Produce json
// @Param id path string true "Physical Room ID"
// @Success 200 {object} response.Message "Physical room deleted"
// @Router /api/admin/physical-rooms/{id} [delete]
// @Security CookieAuth
func (handler *Handler) DeletePhysicalRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhysicalRoom")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	if err := handler.service.DeletePhysical(ctx, session, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Physical room deleted")
}
