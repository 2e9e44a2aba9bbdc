package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"sunstone/shared/constant"
	"sunstone/transport/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAccessGate_Gate(t *testing.T) {
	gate := middleware.NewAccessGate()
	handler := gate.Gate(okHandler())

	t.Run("cookie present passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
		req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: "token-123"})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("browser without cookie is redirected to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
		req.Header.Set(constant.RequestHeaderAccept, "text/html,application/xhtml+xml")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, constant.AdminLoginPath, rec.Header().Get("Location"))
	})

	t.Run("api client without cookie gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
		req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), constant.MessageNotAuthenticated)
	})

	t.Run("empty cookie value is not authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
		req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: ""})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAccessGate_RedirectIfAuthenticated(t *testing.T) {
	gate := middleware.NewAccessGate()
	handler := gate.RedirectIfAuthenticated(okHandler())

	t.Run("logged-in browser is bounced off the login page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, constant.AdminLoginPath, nil)
		req.Header.Set(constant.RequestHeaderAccept, "text/html")
		req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: "token-123"})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, constant.AdminPathPrefix, rec.Header().Get("Location"))
	})

	t.Run("anonymous browser reaches the login page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, constant.AdminLoginPath, nil)
		req.Header.Set(constant.RequestHeaderAccept, "text/html")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("api login request passes through even with cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
		req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
		req.AddCookie(&http.Cookie{Name: constant.SessionCookieName, Value: "token-123"})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
