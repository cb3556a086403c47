package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oticaisis/storefront/session"
)

// SessionCookie names the browser-session cookie.
const SessionCookie = "osid"

// ResolveSession returns the caller's session, starting one (and setting the
// cookie) when none exists.
func ResolveSession(c echo.Context, sessions *session.Manager) *session.Session {
	var id string
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		id = cookie.Value
	}
	s := sessions.GetOrStart(id)
	if s.ID != id {
		c.SetCookie(&http.Cookie{
			Name:     SessionCookie,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s
}
