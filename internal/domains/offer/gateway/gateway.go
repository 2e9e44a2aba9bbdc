package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"sunstone/infras/backend"
	"sunstone/infras/otel"
	"sunstone/internal/domains/offer/model"
	"sunstone/internal/domains/offer/model/dto"
	"sunstone/shared/constant"
)

const (
	pathOffers      = "/api/offers"
	pathAdminOffers = "/api/admin/offers"
	pathOfferByID   = "/api/admin/offers/%s"
)

type Offer interface {
	List(ctx context.Context) ([]model.Offer, error)
	Create(ctx context.Context, token string, req dto.CreateOfferRequest) (model.Offer, error)
	Update(ctx context.Context, token, id string, req dto.UpdateOfferRequest) (model.Offer, error)
	Delete(ctx context.Context, token, id string) error
}

type gatewayImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Offer {
	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

func (g *gatewayImpl) List(ctx context.Context) (res []model.Offer, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".offer.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		Data []model.Offer `json:"data"`
	}{}

	if err = g.client.Get(ctx, pathOffers, constant.Empty, &out); err != nil {
		return nil, fmt.Errorf("list offers call failed: %w", err)
	}

	return out.Data, nil
}

// Create uploads the offer as multipart so an image can ride along with the
// text fields; offers without an image just omit the file part.
func (g *gatewayImpl) Create(ctx context.Context, token string, req dto.CreateOfferRequest) (res model.Offer, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".offer.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	form := &backend.MultipartForm{
		Fields: map[string]string{
			"title":            req.Title,
			"description":      req.Description,
			"discount_percent": strconv.FormatFloat(req.DiscountPercent, 'f', -1, 64),
			"valid_from":       req.ValidFrom,
			"valid_until":      req.ValidUntil,
		},
	}

	if req.Image != nil {
		form.Files = []backend.FilePart{
			{FieldName: "image", FileName: req.FileName, Content: req.Image},
		}
	}

	out := struct {
		Data model.Offer `json:"data"`
	}{}

	if err = g.client.PostMultipart(ctx, pathAdminOffers, token, form, &out); err != nil {
		return res, fmt.Errorf("create offer call failed: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) Update(ctx context.Context, token, id string, req dto.UpdateOfferRequest) (res model.Offer, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".offer.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		Data model.Offer `json:"data"`
	}{}

	if err = g.client.Patch(ctx, fmt.Sprintf(pathOfferByID, id), token, req, &out); err != nil {
		return res, fmt.Errorf("update offer call failed: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) Delete(ctx context.Context, token, id string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".offer.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Delete(ctx, fmt.Sprintf(pathOfferByID, id), token, nil); err != nil {
		return fmt.Errorf("delete offer call failed: %w", err)
	}

	return nil
}
