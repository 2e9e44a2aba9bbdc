package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunstone/config"
	"sunstone/infras/backend"
	"sunstone/infras/otel/mocks"
	"sunstone/shared/failure"
)

func newClient(t *testing.T, handler http.HandlerFunc) backend.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.TimeoutSeconds = 5

	return backend.New(cfg, mocks.NewOtel())
}

func TestClientSendsBothAuthHeaders(t *testing.T) {
	var gotAuthorization, gotAuthToken, gotAccept string

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotAuthToken = r.Header.Get("x-auth-token")
		gotAccept = r.Header.Get("Accept")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	err := client.Get(context.Background(), "/api/admin/bookings", "secret-token", nil)

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuthorization)
	assert.Equal(t, "secret-token", gotAuthToken)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClientOmitsAuthHeadersWithoutToken(t *testing.T) {
	var hasAuthorization, hasAuthToken bool

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuthorization = r.Header["Authorization"]
		hasAuthToken = r.Header.Get("x-auth-token") != ""

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	err := client.Get(context.Background(), "/api/rooms", "", nil)

	require.NoError(t, err)
	assert.False(t, hasAuthorization)
	assert.False(t, hasAuthToken)
}

func TestClientDecodesSuccessBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"bk_1","status":"pending"}}`))
	})

	var out struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}

	err := client.Post(context.Background(), "/api/bookings", "", map[string]string{"guest_name": "Ada"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "bk_1", out.Data.ID)
	assert.Equal(t, "pending", out.Data.Status)
}

func TestClientRelays422ErrorsMap(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"The given data was invalid.","errors":{"guest_email":["The guest email field is required."]}}`))
	})

	err := client.Post(context.Background(), "/api/bookings", "", map[string]string{}, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.Equal(t, "The given data was invalid.", err.Error())
	assert.Equal(t,
		map[string][]string{"guest_email": {"The guest email field is required."}},
		failure.GetFields(err),
	)
}

func TestClientRelaysRemoteMessage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"booking already checked out"}`))
	})

	err := client.Patch(context.Background(), "/api/admin/bookings/bk_1", "tok", map[string]string{"status": "checked_out"}, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, "booking already checked out", err.Error())
}

func TestClientHandlesNonJSONErrorPage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html><body>Server Error</body></html>`))
	})

	err := client.Get(context.Background(), "/api/rooms", "", nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Contains(t, err.Error(), "non-JSON response (status 500)")
}

func TestClientConvertsTransportFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = "http://127.0.0.1:1"
	cfg.Backend.TimeoutSeconds = 1

	client := backend.New(cfg, mocks.NewOtel())

	err := client.Get(context.Background(), "/api/rooms", "", nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Contains(t, err.Error(), "failed to reach backend")
}

func TestClientMultipartSetsBoundaryItself(t *testing.T) {
	var gotContentType, gotTitle, gotFile string

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotTitle = r.FormValue("title")

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		gotFile = header.Filename

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	form := &backend.MultipartForm{
		Fields: map[string]string{"title": "Pool at dusk"},
		Files: []backend.FilePart{
			{FieldName: "image", FileName: "pool.jpg", Content: strings.NewReader("jpegbytes")},
		},
	}

	err := client.PostMultipart(context.Background(), "/api/admin/gallery", "tok", form, nil)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data; boundary="))
	assert.Equal(t, "Pool at dusk", gotTitle)
	assert.Equal(t, "pool.jpg", gotFile)
}
