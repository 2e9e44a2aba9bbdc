package dto

import (
	"io"

	"sunstone/internal/domains/offer/model"
)

type CreateOfferRequest struct {
	Title           string  `validate:"required,max=200"`
	Description     string  `validate:"omitempty,max=2000"`
	DiscountPercent float64 `validate:"required,gt=0,lte=100"`
	ValidFrom       string  `validate:"required,datetime=2006-01-02"`
	ValidUntil      string  `validate:"required,datetime=2006-01-02"`
	FileName        string  `validate:"omitempty"`
	Image           io.Reader
}

type UpdateOfferRequest struct {
	Title           string  `json:"title"            validate:"omitempty,max=200"`
	Description     string  `json:"description"      validate:"omitempty,max=2000"`
	DiscountPercent float64 `json:"discount_percent" validate:"omitempty,gt=0,lte=100"`
	ValidFrom       string  `json:"valid_from"       validate:"omitempty,datetime=2006-01-02"`
	ValidUntil      string  `json:"valid_until"      validate:"omitempty,datetime=2006-01-02"`
}

type OfferResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"image_url"`
	DiscountPercent float64 `json:"discount_percent"`
	ValidFrom       string  `json:"valid_from"`
	ValidUntil      string  `json:"valid_until"`
}

func (r *OfferResponse) FromModel(mod model.Offer) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Description = mod.Description
	r.ImageURL = mod.ImageURL
	r.DiscountPercent = mod.DiscountPercent
	r.ValidFrom = mod.ValidFrom
	r.ValidUntil = mod.ValidUntil
}

type GetOffersResponse struct {
	Offers []OfferResponse `json:"offers"`
}

func (r *GetOffersResponse) FromModels(models []model.Offer) {
	r.Offers = make([]OfferResponse, len(models))
	for i, mod := range models {
		r.Offers[i].FromModel(mod)
	}
}
