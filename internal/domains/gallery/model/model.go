package model

const (
	EntityName = "gallery image"
)

type Image struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}
