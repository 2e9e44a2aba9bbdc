package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sunstone/config"
	"sunstone/infras/otel"
	"sunstone/internal/domains/session/model"
	"sunstone/internal/domains/session/model/dto"
	"sunstone/internal/domains/session/service"
	"sunstone/shared/constant"
	"sunstone/shared/validator"
	"sunstone/transport/http/response"
)

type Handler struct {
	service service.Session
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Session, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/logout", handler.Logout)
		routerGroup.Get("/me", handler.Me)
	})
}

// Login authenticates an admin against the remote API.
// @Summary Admin login
// @Description Exchange email and password for a session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate login request")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	model.WriteCookie(writer, result.Token, handler.cfg.IsProduction())

	response.WithJSON(writer, http.StatusOK, dto.LoginResponse{Success: true, User: result.User})
}

// Logout clears the session cookies and tells the backend best-effort.
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Logged out"
// @Router /api/auth/logout [post]
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	session := model.FromRequest(request)

	handler.service.Logout(ctx, session)

	model.ClearCookies(writer)

	response.WithMessage(writer, http.StatusOK, "Logged out")
}

// Me returns the admin user behind the current session cookie.
// @Summary Current admin user
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MeResponse "Current user"
// @Failure 401 {object} response.Error
// @Router /api/auth/me [get]
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	session := model.FromRequest(request)

	user, err := handler.service.Me(ctx, session)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.MeResponse{User: user})
}
