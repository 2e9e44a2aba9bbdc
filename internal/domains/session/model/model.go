package model

import (
	"net/http"

	"sunstone/shared/constant"
)

const (
	EntityName = "session"
)

// Session is the per-request admin credential, read from the HTTP-only cookie.
// Presence gates navigation at the edge; validity is the remote API's business.
type Session struct {
	Token string
}

// FromRequest reads the session cookie. An absent cookie yields the zero
// Session, which reports as unauthenticated.
func FromRequest(r *http.Request) Session {
	cookie, err := r.Cookie(constant.SessionCookieName)
	if err != nil {
		return Session{}
	}

	return Session{Token: cookie.Value}
}

func (s Session) Authenticated() bool {
	return s.Token != constant.Empty
}

// AdminUser is the remote API's view of the operator behind the token.
// Read-only from this layer.
type AdminUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// WriteCookie sets the session cookie the way the login route always has:
// HTTP-only, path /, one day, Secure only in production.
func WriteCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     constant.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   constant.SessionCookieMaxAgeSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookies expires the session cookie and the legacy one.
func ClearCookies(w http.ResponseWriter) {
	for _, name := range []string{constant.SessionCookieName, constant.LegacySessionCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    constant.Empty,
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
}
