package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sunstone/infras/backend"
	"sunstone/infras/otel"
	"sunstone/internal/domains/dashboard/model"
	"sunstone/shared/constant"
)

const (
	pathAnalytics = "/api/admin/analytics"
)

type Dashboard interface {
	Analytics(ctx context.Context, token string) (model.Analytics, error)
}

type gatewayImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Dashboard {
	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

func (g *gatewayImpl) Analytics(ctx context.Context, token string) (res model.Analytics, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".dashboard.Analytics")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		Data model.Analytics `json:"data"`
	}{}

	if err = g.client.Get(ctx, pathAnalytics, token, &out); err != nil {
		return res, fmt.Errorf("analytics call failed: %w", err)
	}

	return out.Data, nil
}
