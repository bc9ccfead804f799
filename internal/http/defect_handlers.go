package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
	"defect-tracker.com/defect-tracker/internal/http/validators"
)

func (h *Handler) ListDefects(c echo.Context) error {
	defects, err := h.defects.List(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "failed to list defects")
	}
	return c.JSON(http.StatusOK, defects)
}

func (h *Handler) GetDefect(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "defect id must be an integer")
	}

	defect, err := h.defects.GetDefect(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "failed to get defect")
	}
	return c.JSON(http.StatusOK, defect)
}

func (h *Handler) CreateDefect(c echo.Context) error {
	var req dto.DefectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateDefectRequest(&req); err != nil {
		return err
	}

	defect, err := h.defects.Create(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err, "failed to create defect")
	}
	return c.JSON(http.StatusCreated, defect)
}

func (h *Handler) UpdateDefect(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "defect id must be an integer")
	}

	var req dto.DefectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.defects.Update(c.Request().Context(), id, req); err != nil {
		return h.fail(c, err, "failed to update defect")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteDefect(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "defect id must be an integer")
	}

	if err := h.defects.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "failed to delete defect")
	}
	return c.NoContent(http.StatusNoContent)
}
