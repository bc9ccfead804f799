package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	"defect-tracker.com/defect-tracker/internal/http/validators"
	middleware "defect-tracker.com/defect-tracker/internal/http/middlewares"
)

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	token, err := h.auth.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return h.fail(c, err, "failed to login")
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusOK)
}

func (h *Handler) Logout(c echo.Context) error {
	if token, ok := middleware.TokenFrom(c); ok {
		if err := h.auth.Logout(c.Request().Context(), token); err != nil {
			return h.fail(c, err, "failed to logout")
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusOK)
}
