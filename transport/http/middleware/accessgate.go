package middleware

import (
	"net/http"
	"strings"

	"sunstone/internal/domains/session/model"
	"sunstone/shared/constant"
	"sunstone/shared/failure"
	"sunstone/transport/http/response"
)

// AccessGate protects the admin surface on cookie presence alone: the token
// is never validated here, the remote API rejects a stale one on first use.
type AccessGate interface {
	Gate(http.Handler) http.Handler
	RedirectIfAuthenticated(http.Handler) http.Handler
}

type accessGate struct{}

func NewAccessGate() AccessGate {
	return &accessGate{}
}

// Gate blocks requests without a session cookie. Browser navigation gets a
// redirect to the login page; API clients get a 401 body they can act on.
func (g *accessGate) Gate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := model.FromRequest(r)
		if session.Authenticated() {
			next.ServeHTTP(w, r)

			return
		}

		if prefersHTML(r) {
			http.Redirect(w, r, constant.AdminLoginPath, http.StatusFound)

			return
		}

		response.WithError(w, failure.NotAuthenticatedError)
	})
}

// RedirectIfAuthenticated bounces an already-logged-in browser away from the
// login page.
func (g *accessGate) RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := model.FromRequest(r)
		if session.Authenticated() && prefersHTML(r) {
			http.Redirect(w, r, constant.AdminPathPrefix, http.StatusFound)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func prefersHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get(constant.RequestHeaderAccept), constant.ContentTypeHTML)
}
