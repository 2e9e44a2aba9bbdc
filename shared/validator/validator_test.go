package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"sunstone/shared/failure"
	"sunstone/shared/validator"

	"github.com/stretchr/testify/assert"
)

type contactForm struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type stayForm struct {
	CheckInDate string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	BasePrice   float64 `json:"base_price"    validate:"required,gt=0"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid body",
			body: `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`,
		},
		{
			name:    "missing field",
			body:    `{"name":"Ada","email":"ada@example.com","subject":"Hi"}`,
			wantErr: "Message is required",
		},
		{
			name:    "bad email",
			body:    `{"name":"Ada","email":"nope","subject":"Hi","message":"Hello"}`,
			wantErr: "Email must be a valid email address",
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := contactForm{}
			err := validator.Validate(strings.NewReader(tt.body), &form)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate_DateAndPriceMessages(t *testing.T) {
	form := stayForm{}

	err := validator.Validate(strings.NewReader(`{"check_in_date":"07-03-2026","base_price":45000}`), &form)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CheckInDate must be a valid calendar date")

	err = validator.Validate(strings.NewReader(`{"check_in_date":"2026-03-07","base_price":-1}`), &form)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "BasePrice must be greater than 0")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("confirmed", "oneof=pending confirmed cancelled"))
	assert.Error(t, validator.ValidateVar("checked_out", "oneof=pending confirmed cancelled"))
}
