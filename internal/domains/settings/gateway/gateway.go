package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sunstone/infras/backend"
	"sunstone/infras/otel"
	"sunstone/internal/domains/settings/model"
	"sunstone/shared/constant"
)

const (
	pathAdminSettings = "/api/admin/settings"
)

type Settings interface {
	Fetch(ctx context.Context, token string) (model.Remote, error)
	Save(ctx context.Context, token string, remote model.Remote) error
}

type gatewayImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Settings {
	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

func (g *gatewayImpl) Fetch(ctx context.Context, token string) (res model.Remote, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".settings.Fetch")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		Data model.Remote `json:"data"`
	}{}

	if err = g.client.Get(ctx, pathAdminSettings, token, &out); err != nil {
		return nil, fmt.Errorf("fetch settings call failed: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) Save(ctx context.Context, token string, remote model.Remote) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".settings.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Put(ctx, pathAdminSettings, token, remote, nil); err != nil {
		return fmt.Errorf("save settings call failed: %w", err)
	}

	return nil
}
