package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	"defect-tracker.com/defect-tracker/internal/http/validators"
)

// User handlers answer with dto.UserResponse so the password hash never
// leaks to clients.

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "failed to list users")
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user id must be an integer")
	}

	user, err := h.users.GetUser(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "failed to get user")
	}
	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req dto.UserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err, "failed to create user")
	}
	return c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user id must be an integer")
	}

	var req dto.UserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.users.Update(c.Request().Context(), id, req); err != nil {
		return h.fail(c, err, "failed to update user")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user id must be an integer")
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "failed to delete user")
	}
	return c.NoContent(http.StatusNoContent)
}
