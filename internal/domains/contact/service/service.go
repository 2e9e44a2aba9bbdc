package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"sunstone/config"
	"sunstone/infras/otel"
	"sunstone/internal/domains/contact/gateway"
	"sunstone/internal/domains/contact/model/dto"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
)

// NoteBackendUnavailable is returned in place of an error while the remote
// contact endpoint does not exist yet.
const NoteBackendUnavailable = "Contact endpoint not yet implemented on backend"

type Contact interface {
	Submit(ctx context.Context, req dto.ContactRequest) (dto.ContactResponse, error)
}

type serviceImpl struct {
	gateway gateway.Contact
	cfg     *config.Config
	otel    otel.Otel
}

func New(gateway gateway.Contact, cfg *config.Config, otel otel.Otel) Contact {
	return &serviceImpl{
		gateway: gateway,
		cfg:     cfg,
		otel:    otel,
	}
}

// Submit forwards the message. While Contact.MaskBackendUnavailable is set,
// a missing or unreachable remote endpoint is reported as success with a
// note instead of an error, so the public form keeps working before the
// backend ships the endpoint.
func (s *serviceImpl) Submit(ctx context.Context, req dto.ContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.gateway.Submit(ctx, req)
	if err == nil {
		return dto.ContactResponse{Success: true}, nil
	}

	if s.cfg.Contact.MaskBackendUnavailable && maskable(err) {
		log.Warn().Err(err).Str("email", req.Email).Msg("contact backend unavailable, masking per policy")

		return dto.ContactResponse{Success: true, Note: NoteBackendUnavailable}, nil
	}

	log.Error().Err(err).Msg("failed to submit contact message")

	return res, fmt.Errorf("failed to submit contact message: %w", err)
}

// maskable covers the two shapes the missing endpoint produces: a remote 404
// or a transport/normalization failure surfaced as a bad gateway.
func maskable(err error) bool {
	switch failure.GetCode(err) {
	case http.StatusNotFound, http.StatusBadGateway:
		return true
	}

	return false
}
