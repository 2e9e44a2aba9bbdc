package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sunstone/infras/otel"
	"sunstone/internal/domains/booking/model/dto"
	"sunstone/internal/domains/booking/service"
	"sunstone/internal/domains/booking/wizard"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared/constant"
	gDto "sunstone/shared/dto"
	"sunstone/shared/validator"
	"sunstone/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// PublicRouter mounts the endpoints the website wizard calls without a
// session.
func (handler *Handler) PublicRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Post("/availability", handler.CheckAvailability)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Post("/{id}/status", handler.SetBookingStatus)
		routerGroup.Post("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/checkout", handler.CheckoutBooking)
		routerGroup.Post("/{id}/send-email", handler.SendBookingEmail)
	})
}

// CreateBooking submits the website wizard's payload.
// @Summary Create a booking
// @Description Create a booking from the public website; no session required.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking request")

		response.WithError(writer, err)

		return
	}

	session := sessionModel.FromRequest(request)

	res, err := handler.service.Create(ctx, session, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, wizard.Friendly(err))

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// CheckAvailability asks the remote API whether the requested stay fits.
// @Summary Check availability
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.AvailabilityRequest true "Availability Request"
// @Success 200 {object} dto.AvailabilityResponse "Availability result"
// @Failure 400 {object} response.Error
// @Router /api/bookings/availability [post]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability request")

		response.WithError(writer, err)

		return
	}

	session := sessionModel.FromRequest(request)

	res, err := handler.service.Availability(ctx, session, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, wizard.Friendly(err))

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings lists bookings for the back office.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param status query string false "Filter by status"
// @Param search query string false "Search guest name or email"
// @Param date query string false "Filter by check-in date"
// @Success 200 {object} dto.GetBookingsResponse "List of bookings"
// @Failure 401 {object} response.Error
// @Router /api/admin/bookings [get]
// @Security CookieAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	session := sessionModel.FromRequest(request)

	res, err := handler.service.List(ctx, session, queryParams)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID fetches one booking.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Booking"
// @Failure 404 {object} response.Error
// @Router /api/admin/bookings/{id} [get]
// @Security CookieAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	res, err := handler.service.Get(ctx, session, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateBooking patches booking fields.
// @Summary Update a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} dto.BookingResponse "Updated booking"
// @Failure 400 {object} response.Error
// @Router /api/admin/bookings/{id} [patch]
// @Security CookieAuth
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.UpdateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate booking update")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	res, err := handler.service.Update(ctx, session, req, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SetBookingStatus moves a booking to an explicit status.
// @Summary Set booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.SetStatusRequest true "Set Status Request"
// @Success 200 {object} dto.BookingResponse "Updated booking"
// @Failure 409 {object} response.Error
// @Router /api/admin/bookings/{id}/status [post]
// @Security CookieAuth
func (handler *Handler) SetBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetBookingStatus")
	defer scope.End()

	req := dto.SetStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate status request")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	res, err := handler.service.SetStatus(ctx, session, req, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ConfirmBooking confirms a pending booking.
// @Summary Confirm a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse "Confirmed booking"
// @Failure 409 {object} response.Error
// @Router /api/admin/bookings/{id}/confirm [post]
// @Security CookieAuth
func (handler *Handler) ConfirmBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	res, err := handler.service.Confirm(ctx, session, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking cancels a booking.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled"
// @Router /api/admin/bookings/{id}/cancel [post]
// @Security CookieAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	if err := handler.service.Cancel(ctx, session, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking cancelled")
}

// CheckoutBooking checks a guest out and frees the room backend-side.
// @Summary Check out a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking checked out"
// @Router /api/admin/bookings/{id}/checkout [post]
// @Security CookieAuth
func (handler *Handler) CheckoutBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	if err := handler.service.Checkout(ctx, session, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking checked out")
}

// SendBookingEmail asks the backend to email the guest.
// @Summary Send a booking email
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.SendEmailRequest true "Send Email Request"
// @Success 200 {object} response.Message "Email sent"
// @Router /api/admin/bookings/{id}/send-email [post]
// @Security CookieAuth
func (handler *Handler) SendBookingEmail(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendBookingEmail")
	defer scope.End()

	req := dto.SendEmailRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate email request")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	if err := handler.service.SendEmail(ctx, session, req, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Email sent")
}
