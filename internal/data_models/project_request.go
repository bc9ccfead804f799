package dto

import "defect-tracker.com/defect-tracker/internal/constants"

type ProjectRequest struct {
	Name   string            `json:"name"`
	Status *constants.Status `json:"status,omitempty"`
}
