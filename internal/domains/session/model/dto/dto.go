package dto

import (
	"sunstone/internal/domains/session/model"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is what the remote API returns on a successful login.
type LoginResult struct {
	Token string          `json:"token"`
	User  model.AdminUser `json:"user"`
}

type LoginResponse struct {
	Success bool            `json:"success"`
	User    model.AdminUser `json:"user"`
}

type MeResponse struct {
	User model.AdminUser `json:"user"`
}
