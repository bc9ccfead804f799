package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	"defect-tracker.com/defect-tracker/internal/http/validators"
)

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "failed to list projects")
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "project id must be an integer")
	}

	project, err := h.projects.GetProject(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "failed to get project")
	}
	return c.JSON(http.StatusOK, project)
}

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateProjectRequest(&req); err != nil {
		return err
	}

	project, err := h.projects.Create(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err, "failed to create project")
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "project id must be an integer")
	}

	var req dto.ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.projects.Update(c.Request().Context(), id, req); err != nil {
		return h.fail(c, err, "failed to update project")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "project id must be an integer")
	}

	if err := h.projects.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "failed to delete project")
	}
	return c.NoContent(http.StatusNoContent)
}
