package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	"defect-tracker.com/defect-tracker/internal/http/validators"
)

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.tasks.ListActive(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "failed to list tasks")
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "task id must be an integer")
	}

	task, err := h.tasks.GetTask(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "failed to get task")
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.CreateInitial(c.Request().Context(), *req.DefectID, req)
	if err != nil {
		return h.fail(c, err, "failed to create task")
	}
	return c.JSON(http.StatusCreated, task)
}

// UpdateTask appends the next version of the defect's task; the body is a
// diff against the current version.
func (h *Handler) UpdateTask(c echo.Context) error {
	defectID, err := strconv.Atoi(c.Param("defectId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "defect id must be an integer")
	}

	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if _, err := h.tasks.AppendVersion(c.Request().Context(), defectID, req); err != nil {
		return h.fail(c, err, "failed to update task")
	}
	return c.NoContent(http.StatusNoContent)
}
