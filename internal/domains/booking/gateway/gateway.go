package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sunstone/infras/backend"
	"sunstone/infras/otel"
	"sunstone/internal/domains/booking/model"
	"sunstone/internal/domains/booking/model/dto"
	"sunstone/shared/constant"
	gDto "sunstone/shared/dto"
)

const (
	pathBookings      = "/api/bookings"
	pathAvailability  = "/api/bookings/availability"
	pathCancel        = "/api/bookings/cancel/%s"
	pathAdminBookings = "/api/admin/bookings"
	pathBookingByID   = "/api/admin/bookings/%s"
	pathCheckout      = "/api/admin/bookings/%s/checkout"
	pathSendEmail     = "/api/admin/bookings/%s/send-email"
)

type Booking interface {
	Create(ctx context.Context, token string, req dto.RemoteCreateBookingRequest) (model.Booking, error)
	Availability(ctx context.Context, token string, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	List(ctx context.Context, token string, params gDto.QueryParams) ([]model.Booking, int, error)
	Get(ctx context.Context, token, id string) (model.Booking, error)
	Update(ctx context.Context, token, id string, body any) (model.Booking, error)
	Cancel(ctx context.Context, token, id string) error
	Checkout(ctx context.Context, token, id string) error
	SendEmail(ctx context.Context, token, id string, req dto.SendEmailRequest) error
}

type gatewayImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Booking {
	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

func (g *gatewayImpl) Create(ctx context.Context, token string, req dto.RemoteCreateBookingRequest) (res model.Booking, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		Data model.Booking `json:"data"`
	}{}

	if err = g.client.Post(ctx, pathBookings, token, req, &out); err != nil {
		return res, fmt.Errorf("create booking call failed: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) Availability(ctx context.Context, token string, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".booking.Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Post(ctx, pathAvailability, token, req, &res); err != nil {
		return res, fmt.Errorf("availability call failed: %w", err)
	}

	return res, nil
}

func (g *gatewayImpl) List(ctx context.Context, token string, params gDto.QueryParams) (res []model.Booking, total int, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".booking.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		Data  []model.Booking `json:"data"`
		Total int             `json:"total"`
	}{}

	path := pathAdminBookings
	if query := params.Encode(); query != constant.Empty {
		path += "?" + query
	}

	if err = g.client.Get(ctx, path, token, &out); err != nil {
		return nil, 0, fmt.Errorf("list bookings call failed: %w", err)
	}

	return out.Data, out.Total, nil
}

func (g *gatewayImpl) Get(ctx context.Context, token, id string) (res model.Booking, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		Data model.Booking `json:"data"`
	}{}

	if err = g.client.Get(ctx, fmt.Sprintf(pathBookingByID, id), token, &out); err != nil {
		return res, fmt.Errorf("get booking call failed: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) Update(ctx context.Context, token, id string, body any) (res model.Booking, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		Data model.Booking `json:"data"`
	}{}

	if err = g.client.Patch(ctx, fmt.Sprintf(pathBookingByID, id), token, body, &out); err != nil {
		return res, fmt.Errorf("update booking call failed: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) Cancel(ctx context.Context, token, id string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Post(ctx, fmt.Sprintf(pathCancel, id), token, nil, nil); err != nil {
		return fmt.Errorf("cancel booking call failed: %w", err)
	}

	return nil
}

func (g *gatewayImpl) Checkout(ctx context.Context, token, id string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".booking.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Post(ctx, fmt.Sprintf(pathCheckout, id), token, nil, nil); err != nil {
		return fmt.Errorf("checkout call failed: %w", err)
	}

	return nil
}

func (g *gatewayImpl) SendEmail(ctx context.Context, token, id string, req dto.SendEmailRequest) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".booking.SendEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Post(ctx, fmt.Sprintf(pathSendEmail, id), token, req, nil); err != nil {
		return fmt.Errorf("send email call failed: %w", err)
	}

	return nil
}
