package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sunstone/infras/backend"
	"sunstone/infras/otel"
	"sunstone/internal/domains/session/model"
	"sunstone/internal/domains/session/model/dto"
	"sunstone/shared/constant"
)

const (
	pathLogin  = "/api/admin/login"
	pathLogout = "/api/admin/logout"
	pathMe     = "/api/auth/me"
)

type Session interface {
	Login(ctx context.Context, email, password string) (dto.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (model.AdminUser, error)
}

type gatewayImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Session {
	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

func (g *gatewayImpl) Login(ctx context.Context, email, password string) (res dto.LoginResult, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".session.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	body := map[string]string{"email": email, "password": password}

	if err = g.client.Post(ctx, pathLogin, constant.Empty, body, &res); err != nil {
		return res, fmt.Errorf("login call failed: %w", err)
	}

	return res, nil
}

func (g *gatewayImpl) Logout(ctx context.Context, token string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".session.Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Post(ctx, pathLogout, token, nil, nil); err != nil {
		return fmt.Errorf("logout call failed: %w", err)
	}

	return nil
}

func (g *gatewayImpl) Me(ctx context.Context, token string) (res model.AdminUser, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".session.Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		User model.AdminUser `json:"user"`
	}{}

	if err = g.client.Get(ctx, pathMe, token, &out); err != nil {
		return res, fmt.Errorf("me call failed: %w", err)
	}

	return out.User, nil
}
