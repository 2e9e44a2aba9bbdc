package backend

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"sunstone/config"
	"sunstone/infras/otel"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
)

const (
	otelScopeName = "backend"
)

// Client is the single doorway to the remote booking/rooms API. Every call
// sends Accept: application/json; calls with a non-empty token send the same
// value as both Authorization: Bearer and x-auth-token. Responses are
// normalized into decoded values or *failure.Failure — no raw transport or
// decode error escapes to callers.
type Client interface {
	Get(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path, token string, body, out any) error
	Patch(ctx context.Context, path, token string, body, out any) error
	Put(ctx context.Context, path, token string, body, out any) error
	Delete(ctx context.Context, path, token string, out any) error
	PostMultipart(ctx context.Context, path, token string, form *MultipartForm, out any) error
}

// MultipartForm is a multipart payload for the upload endpoints. The content
// type is supplied by the multipart writer so the boundary is always correct;
// callers never set one themselves.
type MultipartForm struct {
	Fields map[string]string
	Files  []FilePart
}

type FilePart struct {
	FieldName string
	FileName  string
	Content   io.Reader
}

// remoteEnvelope covers the error shapes the remote API produces.
type remoteEnvelope struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	return &clientImpl{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		otel:    ot,
	}
}

func (c *clientImpl) Get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, constant.Empty, nil, out)
}

func (c *clientImpl) Post(ctx context.Context, path, token string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, token, body, out)
}

func (c *clientImpl) Patch(ctx context.Context, path, token string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, token, body, out)
}

func (c *clientImpl) Put(ctx context.Context, path, token string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, token, body, out)
}

func (c *clientImpl) Delete(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodDelete, path, token, constant.Empty, nil, out)
}

func (c *clientImpl) PostMultipart(ctx context.Context, path, token string, form *MultipartForm, out any) error {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range form.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return failure.InternalError(fmt.Errorf("failed to write multipart field %s: %w", key, err)) //nolint:wrapcheck
		}
	}

	for _, file := range form.Files {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return failure.InternalError(fmt.Errorf("failed to create multipart file %s: %w", file.FieldName, err)) //nolint:wrapcheck
		}

		if _, err := io.Copy(part, file.Content); err != nil {
			return failure.InternalError(fmt.Errorf("failed to copy multipart file %s: %w", file.FieldName, err)) //nolint:wrapcheck
		}
	}

	if err := writer.Close(); err != nil {
		return failure.InternalError(fmt.Errorf("failed to finalize multipart body: %w", err)) //nolint:wrapcheck
	}

	return c.do(ctx, http.MethodPost, path, token, writer.FormDataContentType(), buf, out)
}

func (c *clientImpl) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return failure.InternalError(fmt.Errorf("failed to encode request body: %w", err)) //nolint:wrapcheck
		}

		reader = bytes.NewReader(encoded)
	}

	return c.do(ctx, method, path, token, constant.ContentTypeJSON, reader, out)
}

func (c *clientImpl) do(ctx context.Context, method, path, token, contentType string, body io.Reader, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+method)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"http.method": method,
		"http.path":   path,
	})

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return failure.InternalError(fmt.Errorf("failed to build request: %w", err)) //nolint:wrapcheck
	}

	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if contentType != constant.Empty {
		request.Header.Set(constant.RequestHeaderContentType, contentType)
	}

	if token != constant.Empty {
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
		request.Header.Set(constant.RequestHeaderAuthToken, token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")

		return failure.BadGateway(fmt.Sprintf("failed to reach backend: %v", err)) //nolint:wrapcheck
	}
	defer response.Body.Close()

	scope.SetAttribute("http.status_code", response.StatusCode)

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return failure.BadGateway(fmt.Sprintf("failed to read backend response: %v", err)) //nolint:wrapcheck
	}

	if response.StatusCode >= http.StatusOK && response.StatusCode < http.StatusMultipleChoices {
		if out == nil || len(payload) == 0 {
			return nil
		}

		if err := json.Unmarshal(payload, out); err != nil {
			log.Error().Err(err).Str("path", path).Msg("backend returned undecodable success body")

			return failure.BadGateway("backend returned an unexpected response format") //nolint:wrapcheck
		}

		return nil
	}

	return c.normalizeError(path, response.StatusCode, response.Header.Get(constant.RequestHeaderContentType), payload)
}

// normalizeError turns a non-2xx remote reply into a typed failure. HTML error
// pages and other non-JSON bodies become a diagnostic message instead of a
// decode error; 422 replies keep their field-keyed errors map verbatim.
func (c *clientImpl) normalizeError(path string, status int, contentType string, payload []byte) error {
	envelope := remoteEnvelope{}

	if !strings.Contains(contentType, "json") || json.Unmarshal(payload, &envelope) != nil {
		log.Error().Int("status", status).Str("path", path).Str("content_type", contentType).
			Msg("backend returned non-JSON error body")

		return failure.BadGateway(fmt.Sprintf("backend returned a non-JSON response (status %d)", status)) //nolint:wrapcheck
	}

	msg := envelope.Message
	if msg == constant.Empty {
		msg = envelope.Error
	}

	if msg == constant.Empty {
		msg = fmt.Sprintf("backend request failed with status %d", status)
	}

	if status == http.StatusUnprocessableEntity && len(envelope.Errors) > 0 {
		return failure.Validation(msg, envelope.Errors) //nolint:wrapcheck
	}

	return failure.Remote(status, msg) //nolint:wrapcheck
}
