package middleware

import (
	"net/http"

	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/curavet/clinic-admin-service/pkg/response"
	"github.com/curavet/clinic-admin-service/pkg/utils"
	"github.com/labstack/echo/v4"
)

const SessionCookieName = "curavet_admin_token"

// SessionAuth guards admin-mutating endpoints. It is a pure function of
// the incoming cookie: missing and failed-verification tokens both end in
// a uniform 401 so callers learn nothing about why a token was rejected.
func SessionAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return response.WriteErrorResponse(c, errs.ErrUnauthorized)
			}

			if !utils.VerifySessionToken(cookie.Value, jwtSecret) {
				return response.WriteErrorResponse(c, errs.ErrInvalidSession)
			}

			return next(c)
		}
	}
}

// SessionTokenFromRequest returns the raw session token, or "" when the
// cookie is absent.
func SessionTokenFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// NewSessionCookie builds the HTTP-only session cookie. Secure is only
// set outside development so local logins over plain HTTP still work.
func NewSessionCookie(token string, environment string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   environment == "production",
	}
}
