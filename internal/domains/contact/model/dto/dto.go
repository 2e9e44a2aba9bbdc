package dto

type ContactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Note    string `json:"note,omitempty"`
}
