package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "defect-tracker.com/defect-tracker/internal/data_models"
)

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Login == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "login is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}
