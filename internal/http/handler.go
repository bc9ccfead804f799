package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "defect-tracker.com/defect-tracker/internal/errors"
	"defect-tracker.com/defect-tracker/internal/services"
)

type Handler struct {
	tasks    *services.TaskService
	defects  *services.DefectService
	projects *services.ProjectService
	users    *services.UserService
	auth     *services.AuthService

	cookieName string
	sessionTTL time.Duration
}

func NewHandler(
	tasks *services.TaskService,
	defects *services.DefectService,
	projects *services.ProjectService,
	users *services.UserService,
	auth *services.AuthService,
	cookieName string,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		tasks:      tasks,
		defects:    defects,
		projects:   projects,
		users:      users,
		auth:       auth,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

// fail translates a service error to an HTTP error. Expected outcomes
// (not found, conflict, bad credentials) carry their own status and are not
// logged; anything else is a storage failure, logged with detail and
// answered with a generic 500.
func (h *Handler) fail(c echo.Context, err error, message string) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}
	c.Logger().Errorf("%s: %v", message, err)
	return echo.NewHTTPError(http.StatusInternalServerError, message)
}
