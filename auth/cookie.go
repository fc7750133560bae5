package auth

import (
	"net/http"
	"time"
)

// CookieWriter is the transport capability the service uses to mirror the
// session token into a client-held cookie: set on login-with-remember,
// cleared on logout. The cookie itself is not an entity — the session
// file stays authoritative.
type CookieWriter interface {
	Set(name, value string, expires time.Time) error
	Clear(name string) error
}

// NopCookies is a CookieWriter for callers with no cookie transport
// (CLIs, tests). Both operations succeed without effect.
type NopCookies struct{}

var _ CookieWriter = NopCookies{}

func (NopCookies) Set(string, string, time.Time) error { return nil }
func (NopCookies) Clear(string) error                  { return nil }

// HTTPCookies writes cookies to an http.ResponseWriter. Construct one per
// request.
type HTTPCookies struct {
	w      http.ResponseWriter
	secure bool
}

var _ CookieWriter = (*HTTPCookies)(nil)

// NewHTTPCookies creates a CookieWriter over w. When secure is set the
// cookies carry the Secure attribute.
func NewHTTPCookies(w http.ResponseWriter, secure bool) *HTTPCookies {
	return &HTTPCookies{w: w, secure: secure}
}

func (c *HTTPCookies) Set(name, value string, expires time.Time) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (c *HTTPCookies) Clear(name string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
