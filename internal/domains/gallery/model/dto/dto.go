package dto

import (
	"io"

	"sunstone/internal/domains/gallery/model"
)

// CreateImageRequest carries the upload straight through to the remote API's
// multipart endpoint; the image bytes are streamed, never buffered whole.
type CreateImageRequest struct {
	Title    string `validate:"required,max=200"`
	Category string `validate:"omitempty,max=100"`
	FileName string `validate:"required"`
	Content  io.Reader
}

type ImageResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (r *ImageResponse) FromModel(mod model.Image) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Category = mod.Category
	r.ImageURL = mod.ImageURL
	r.CreatedAt = mod.CreatedAt
}

type GetImagesResponse struct {
	Images []ImageResponse `json:"images"`
}

func (r *GetImagesResponse) FromModels(models []model.Image) {
	r.Images = make([]ImageResponse, len(models))
	for i, mod := range models {
		r.Images[i].FromModel(mod)
	}
}
