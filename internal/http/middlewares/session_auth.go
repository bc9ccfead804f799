package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"defect-tracker.com/defect-tracker/internal/access"
	apperrors "defect-tracker.com/defect-tracker/internal/errors"
	"defect-tracker.com/defect-tracker/internal/sessions"
)

const (
	sessionKey = "session"
	tokenKey   = "session_token"
)

// Authenticate resolves the session cookie against the store and attaches
// the identity to the echo context. Requests without a valid session are
// rejected outright.
func Authenticate(store sessions.Store, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return apperrors.ErrUnauthorized
			}

			session, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return apperrors.ErrUnauthorized
			}

			c.Set(sessionKey, session)
			c.Set(tokenKey, cookie.Value)
			return next(c)
		}
	}
}

// Authorize consults the access policy for the resource, deriving the
// action from the HTTP method. Must run after Authenticate.
func Authorize(resource access.Resource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFrom(c)
			if !ok {
				return apperrors.ErrUnauthorized
			}
			if !access.Allowed(resource, actionForMethod(c.Request().Method), session.Role) {
				return apperrors.ErrForbidden
			}
			return next(c)
		}
	}
}

func actionForMethod(method string) access.Action {
	switch method {
	case http.MethodPost:
		return access.ActionCreate
	case http.MethodPut, http.MethodPatch:
		return access.ActionUpdate
	case http.MethodDelete:
		return access.ActionDelete
	default:
		return access.ActionRead
	}
}

func SessionFrom(c echo.Context) (sessions.Session, bool) {
	session, ok := c.Get(sessionKey).(sessions.Session)
	return session, ok
}

func TokenFrom(c echo.Context) (string, bool) {
	token, ok := c.Get(tokenKey).(string)
	return token, ok
}
