package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sunstone/infras/otel"
	"sunstone/internal/domains/contact/model/dto"
	"sunstone/internal/domains/contact/service"
	"sunstone/shared/constant"
	"sunstone/shared/validator"
	"sunstone/transport/http/response"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/contact", handler.SubmitContact)
}

// SubmitContact relays a contact form submission to the remote API.
// @Summary Submit the contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact form"
// @Success 200 {object} dto.ContactResponse "Submission result"
// @Failure 400 {object} response.Error
// @Router /api/contact [post]
func (handler *Handler) SubmitContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	var req dto.ContactRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate contact form")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
