package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sunstone/infras/otel"
	"sunstone/internal/domains/dashboard/service"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared/constant"
	"sunstone/transport/http/response"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/analytics", handler.GetAnalytics)
}

// GetAnalytics returns the back-office dashboard figures.
// @Summary Get dashboard analytics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.Analytics "Dashboard analytics"
// @Failure 401 {object} response.Error
// @Router /api/admin/analytics [get]
// @Security CookieAuth
func (handler *Handler) GetAnalytics(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnalytics")
	defer scope.End()

	session := sessionModel.FromRequest(request)

	res, err := handler.service.Analytics(ctx, session)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
