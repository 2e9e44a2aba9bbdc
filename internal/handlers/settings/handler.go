package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sunstone/infras/otel"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/internal/domains/settings/model"
	"sunstone/internal/domains/settings/service"
	"sunstone/shared/constant"
	"sunstone/shared/validator"
	"sunstone/transport/http/response"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/settings", handler.GetSettings)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/", handler.UpdateSettings)
	})
}

// GetSettings returns the hotel settings merged over the built-in defaults.
// @Summary Get hotel settings
// @Tags Settings
// @Produce json
// @Success 200 {object} model.Hotel "Hotel settings"
// @Failure 502 {object} response.Error
// @Router /api/settings [get]
func (handler *Handler) GetSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	session := sessionModel.FromRequest(request)

	res, err := handler.service.Get(ctx, session)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateSettings replaces the hotel settings.
// @Summary Update hotel settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body model.Hotel true "Hotel settings"
// @Success 200 {object} response.Message "Settings updated"
// @Failure 400 {object} response.Error
// @Router /api/admin/settings [put]
// @Security CookieAuth
func (handler *Handler) UpdateSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	var hotel model.Hotel
	if err := validator.Validate(request.Body, &hotel); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate settings")

		response.WithError(writer, err)

		return
	}

	session := sessionModel.FromRequest(request)

	if err := handler.service.Update(ctx, session, hotel); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Settings updated")
}
