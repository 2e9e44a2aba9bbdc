package model

const (
	EntityName = "offer"
)

type Offer struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"image_url"`
	DiscountPercent float64 `json:"discount_percent"`
	ValidFrom       string  `json:"valid_from"`
	ValidUntil      string  `json:"valid_until"`
}
