package offer

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sunstone/infras/otel"
	"sunstone/internal/domains/offer/model/dto"
	"sunstone/internal/domains/offer/service"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
	"sunstone/shared/validator"
	"sunstone/transport/http/response"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	service service.Offer
	otel    otel.Otel
}

func New(service service.Offer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/offers", handler.GetOffers)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/offers", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetOffers)
		routerGroup.Post("/", handler.CreateOffer)
		routerGroup.Patch("/{id}", handler.UpdateOffer)
		routerGroup.Delete("/{id}", handler.DeleteOffer)
	})
}

// GetOffers lists the current special offers.
// @Summary List special offers
// @Tags Offer
// @Produce json
// @Success 200 {object} dto.GetOffersResponse "Special offers"
// @Failure 502 {object} response.Error
// @Router /api/offers [get]
func (handler *Handler) GetOffers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOffers")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateOffer accepts a multipart form describing a new offer.
// @Summary Create a special offer
// @Tags Offer
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Offer title"
// @Param description formData string false "Offer description"
// @Param discount_percent formData number true "Discount percentage"
// @Param valid_from formData string true "Start date (YYYY-MM-DD)"
// @Param valid_until formData string true "End date (YYYY-MM-DD)"
// @Param image formData file false "Offer image"
// @Success 201 {object} dto.OfferResponse "Created offer"
// @Failure 400 {object} response.Error
// @Router /api/admin/offers [post]
// @Security CookieAuth
func (handler *Handler) CreateOffer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOffer")
	defer scope.End()

	if err := request.ParseMultipartForm(maxUploadBytes); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart offer form")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	req := dto.CreateOfferRequest{
		Title:       request.FormValue("title"),
		Description: request.FormValue("description"),
		ValidFrom:   request.FormValue("valid_from"),
		ValidUntil:  request.FormValue("valid_until"),
	}

	if raw := request.FormValue("discount_percent"); raw != "" {
		discount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			scope.TraceError(err)

			response.WithError(writer, failure.BadRequestFromString("discount_percent must be a number"))

			return
		}

		req.DiscountPercent = discount
	}

	if file, header, err := request.FormFile("image"); err == nil {
		defer file.Close()

		req.FileName = header.Filename
		req.Image = file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate offer")

		response.WithError(writer, err)

		return
	}

	session := sessionModel.FromRequest(request)

	res, err := handler.service.Create(ctx, session, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateOffer patches an existing offer.
// @Summary Update a special offer
// @Tags Offer
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body dto.UpdateOfferRequest true "Fields to update"
// @Success 200 {object} dto.OfferResponse "Updated offer"
// @Failure 400 {object} response.Error
// @Router /api/admin/offers/{id} [patch]
// @Security CookieAuth
func (handler *Handler) UpdateOffer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOffer")
	defer scope.End()

	var req dto.UpdateOfferRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate offer update")

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

// DeleteOffer removes an offer.
// @Summary Delete a special offer
// @Tags Offer
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} response.Message "Offer deleted"
// @Router /api/admin/offers/{id} [delete]
// @Security CookieAuth
func (handler *Handler) DeleteOffer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOffer")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	if err := handler.service.Delete(ctx, session, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Offer deleted")
}
