package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sunstone/infras/backend"
	"sunstone/infras/otel"
	"sunstone/internal/domains/room/model"
	"sunstone/shared/constant"
)

const (
	pathRoomsPublic   = "/api/rooms"
	pathRoomsList     = "/api/rooms/list"
	pathRoomsAdd      = "/api/rooms/add"
	pathRoomByID      = "/api/rooms/%s"
	pathPhysicalRooms = "/api/admin/physical-rooms"
	pathPhysicalByID  = "/api/admin/physical-rooms/%s"
)

// Room wraps the remote room-type and physical-room endpoints. The public
// listing needs no token; everything else requires the admin session token.
type Room interface {
	ListPublic(ctx context.Context) ([]model.RoomType, error)
	ListAdmin(ctx context.Context, token string) ([]model.RoomType, error)
	CreateType(ctx context.Context, token string, body any) error
	UpdateType(ctx context.Context, token, id string, body any) error
	DeleteType(ctx context.Context, token, id string) error
	ListPhysical(ctx context.Context, token string) ([]model.PhysicalRoom, error)
	CreatePhysical(ctx context.Context, token string, body any) error
	UpdatePhysical(ctx context.Context, token, id string, body any) error
	DeletePhysical(ctx context.Context, token, id string) error
}

type gatewayImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Room {
	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

type roomTypesEnvelope struct {
	Data []model.RoomType `json:"data"`
}

type physicalRoomsEnvelope struct {
	Data []model.PhysicalRoom `json:"data"`
}

func (g *gatewayImpl) ListPublic(ctx context.Context) (res []model.RoomType, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".room.ListPublic")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := roomTypesEnvelope{}

	if err = g.client.Get(ctx, pathRoomsPublic, constant.Empty, &out); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) ListAdmin(ctx context.Context, token string) (res []model.RoomType, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".room.ListAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := roomTypesEnvelope{}

	if err = g.client.Get(ctx, pathRoomsList, token, &out); err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) CreateType(ctx context.Context, token string, body any) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".room.CreateType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Post(ctx, pathRoomsAdd, token, body, nil); err != nil {
		return fmt.Errorf("failed to create room type: %w", err)
	}

	return nil
}

func (g *gatewayImpl) UpdateType(ctx context.Context, token, id string, body any) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".room.UpdateType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Patch(ctx, fmt.Sprintf(pathRoomByID, id), token, body, nil); err != nil {
		return fmt.Errorf("failed to update room type: %w", err)
	}

	return nil
}

func (g *gatewayImpl) DeleteType(ctx context.Context, token, id string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".room.DeleteType")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Delete(ctx, fmt.Sprintf(pathRoomByID, id), token, nil); err != nil {
		return fmt.Errorf("failed to delete room type: %w", err)
	}

	return nil
}

func (g *gatewayImpl) ListPhysical(ctx context.Context, token string) (res []model.PhysicalRoom, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".room.ListPhysical")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := physicalRoomsEnvelope{}

	if err = g.client.Get(ctx, pathPhysicalRooms, token, &out); err != nil {
		return nil, fmt.Errorf("failed to list physical rooms: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) CreatePhysical(ctx context.Context, token string, body any) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".room.CreatePhysical")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Post(ctx, pathPhysicalRooms, token, body, nil); err != nil {
		return fmt.Errorf("failed to create physical room: %w", err)
	}

	return nil
}

func (g *gatewayImpl) UpdatePhysical(ctx context.Context, token, id string, body any) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".room.UpdatePhysical")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Patch(ctx, fmt.Sprintf(pathPhysicalByID, id), token, body, nil); err != nil {
		return fmt.Errorf("failed to update physical room: %w", err)
	}

	return nil
}

func (g *gatewayImpl) DeletePhysical(ctx context.Context, token, id string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".room.DeletePhysical")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Delete(ctx, fmt.Sprintf(pathPhysicalByID, id), token, nil); err != nil {
		return fmt.Errorf("failed to delete physical room: %w", err)
	}

	return nil
}
