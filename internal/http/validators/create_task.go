package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.TaskRequest) error {
	if r.DefectID == nil || *r.DefectID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "defect_id is required")
	}
	return nil
}
