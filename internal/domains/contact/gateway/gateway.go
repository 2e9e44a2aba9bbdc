package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sunstone/infras/backend"
	"sunstone/infras/otel"
	"sunstone/internal/domains/contact/model/dto"
	"sunstone/shared/constant"
)

const (
	pathContact = "/api/contact"
)

type Contact interface {
	Submit(ctx context.Context, req dto.ContactRequest) error
}

type gatewayImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Contact {
	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

func (g *gatewayImpl) Submit(ctx context.Context, req dto.ContactRequest) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".contact.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Post(ctx, pathContact, constant.Empty, req, nil); err != nil {
		return fmt.Errorf("contact call failed: %w", err)
	}

	return nil
}
