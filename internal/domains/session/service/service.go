package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sunstone/infras/otel"
	"sunstone/internal/domains/session/gateway"
	"sunstone/internal/domains/session/model"
	"sunstone/internal/domains/session/model/dto"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
)

type Session interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResult, error)
	Logout(ctx context.Context, session model.Session)
	Me(ctx context.Context, session model.Session) (model.AdminUser, error)
}

type serviceImpl struct {
	gateway gateway.Session
	otel    otel.Otel
}

func New(gateway gateway.Session, otel otel.Otel) Session {
	return &serviceImpl{
		gateway: gateway,
		otel:    otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.gateway.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("login rejected")

		return res, fmt.Errorf("failed to login: %w", err)
	}

	if res.Token == constant.Empty {
		return res, failure.Unauthorized("Login failed") //nolint:wrapcheck
	}

	return res, nil
}

// Logout notifies the backend best-effort; cookie clearing happens regardless
// at the handler, so a failed call is only logged.
func (s *serviceImpl) Logout(ctx context.Context, session model.Session) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Logout")
	defer scope.End()

	if !session.Authenticated() {
		return
	}

	if err := s.gateway.Logout(ctx, session.Token); err != nil {
		log.Warn().Err(err).Msg("backend logout call failed, clearing cookies anyway")
	}
}

func (s *serviceImpl) Me(ctx context.Context, session model.Session) (res model.AdminUser, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !session.Authenticated() {
		return res, failure.NotAuthenticatedError //nolint:wrapcheck
	}

	res, err = s.gateway.Me(ctx, session.Token)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch current admin user")

		return res, fmt.Errorf("failed to fetch current user: %w", err)
	}

	return res, nil
}
