package http

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"defect-tracker.com/defect-tracker/internal/access"
	apperrors "defect-tracker.com/defect-tracker/internal/errors"
	middleware "defect-tracker.com/defect-tracker/internal/http/middlewares"
	"defect-tracker.com/defect-tracker/internal/sessions"
)

func Register(
	e *echo.Echo,
	h *Handler,
	store sessions.Store,
	cookieName string,
	corsOrigins []string,
	rateLimitPerMinute int,
) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var appErr *apperrors.Exception
		if errors.As(err, &appErr) {
			err = echo.NewHTTPError(appErr.StatusCode, appErr.Message)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     corsOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	authn := middleware.Authenticate(store, cookieName)

	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout, authn)

	tasks := e.Group("/tasks", authn, middleware.Authorize(access.ResourceTasks))
	tasks.GET("", h.ListTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.POST("", h.CreateTask)
	tasks.PUT("/:defectId", h.UpdateTask)

	defects := e.Group("/defects", authn, middleware.Authorize(access.ResourceDefects))
	defects.GET("", h.ListDefects)
	defects.GET("/:id", h.GetDefect)
	defects.POST("", h.CreateDefect)
	defects.PUT("/:id", h.UpdateDefect)
	defects.DELETE("/:id", h.DeleteDefect)

	projects := e.Group("/projects", authn, middleware.Authorize(access.ResourceProjects))
	projects.GET("", h.ListProjects)
	projects.GET("/:id", h.GetProject)
	projects.POST("", h.CreateProject)
	projects.PUT("/:id", h.UpdateProject)
	projects.DELETE("/:id", h.DeleteProject)

	users := e.Group("/users", authn, middleware.Authorize(access.ResourceUsers))
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.POST("", h.CreateUser)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}
