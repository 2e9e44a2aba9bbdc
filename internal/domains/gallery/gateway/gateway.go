package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	"fmt"

	"sunstone/infras/backend"
	"sunstone/infras/otel"
	"sunstone/internal/domains/gallery/model"
	"sunstone/internal/domains/gallery/model/dto"
	"sunstone/shared/constant"
)

const (
	pathGallery      = "/api/gallery"
	pathAdminGallery = "/api/admin/gallery"
	pathGalleryByID  = "/api/admin/gallery/%s"
)

type Gallery interface {
	List(ctx context.Context) ([]model.Image, error)
	Create(ctx context.Context, token string, req dto.CreateImageRequest) (model.Image, error)
	Delete(ctx context.Context, token, id string) error
}

type gatewayImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Gallery {
	return &gatewayImpl{
		client: client,
		otel:   otel,
	}
}

func (g *gatewayImpl) List(ctx context.Context) (res []model.Image, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".gallery.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	out := struct {
		Data []model.Image `json:"data"`
	}{}

	if err = g.client.Get(ctx, pathGallery, constant.Empty, &out); err != nil {
		return nil, fmt.Errorf("list gallery call failed: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) Create(ctx context.Context, token string, req dto.CreateImageRequest) (res model.Image, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".gallery.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	form := &backend.MultipartForm{
		Fields: map[string]string{
			"title":    req.Title,
			"category": req.Category,
		},
		Files: []backend.FilePart{
			{FieldName: "image", FileName: req.FileName, Content: req.Content},
		},
	}

	out := struct {
		Data model.Image `json:"data"`
	}{}

	if err = g.client.PostMultipart(ctx, pathAdminGallery, token, form, &out); err != nil {
		return res, fmt.Errorf("upload gallery image call failed: %w", err)
	}

	return out.Data, nil
}

func (g *gatewayImpl) Delete(ctx context.Context, token, id string) (err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".gallery.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = g.client.Delete(ctx, fmt.Sprintf(pathGalleryByID, id), token, nil); err != nil {
		return fmt.Errorf("delete gallery image call failed: %w", err)
	}

	return nil
}
