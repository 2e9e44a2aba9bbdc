package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sunstone/infras/otel"
	"sunstone/internal/domains/gallery/model/dto"
	"sunstone/internal/domains/gallery/service"
	sessionModel "sunstone/internal/domains/session/model"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
	"sunstone/shared/validator"
	"sunstone/transport/http/response"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/gallery", handler.GetGallery)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/gallery", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGallery)
		routerGroup.Post("/", handler.UploadImage)
		routerGroup.Delete("/{id}", handler.DeleteImage)
	})
}

// GetGallery lists the gallery images.
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Success 200 {object} dto.GetImagesResponse "Gallery images"
// @Failure 502 {object} response.Error
// @Router /api/gallery [get]
func (handler *Handler) GetGallery(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGallery")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UploadImage accepts a multipart upload and relays it to the remote API.
// @Summary Upload a gallery image
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Image title"
// @Param category formData string false "Image category"
// @Param image formData file true "Image file"
// @Success 201 {object} dto.ImageResponse "Uploaded image"
// @Failure 400 {object} response.Error
// @Router /api/admin/gallery [post]
// @Security CookieAuth
func (handler *Handler) UploadImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := request.ParseMultipartForm(maxUploadBytes); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart upload")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, header, err := request.FormFile("image")
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("image file is required"))

		return
	}
	defer file.Close()

	req := dto.CreateImageRequest{
		Title:    request.FormValue("title"),
		Category: request.FormValue("category"),
		FileName: header.Filename,
		Content:  file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate gallery upload")

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

// DeleteImage removes a gallery image.
// @Summary Delete a gallery image
// @Tags Gallery
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} response.Message "Image deleted"
// @Router /api/admin/gallery/{id} [delete]
// @Security CookieAuth
func (handler *Handler) DeleteImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	session := sessionModel.FromRequest(request)

	if err := handler.service.Delete(ctx, session, id); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Image deleted")
}
