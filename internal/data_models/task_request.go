package dto

import (
	"time"

	"defect-tracker.com/defect-tracker/internal/constants"
)

// TaskRequest carries a version diff: every nil field is carried forward
// from the defect's current version when appending. DefectID is only
// meaningful on create; the append path ignores it because the defect of a
// chain never changes.
type TaskRequest struct {
	DefectID   *int              `json:"defect_id,omitempty"`
	ProjectID  *int              `json:"project_id,omitempty"`
	ExecutorID *int              `json:"executor_id,omitempty"`
	Term       *time.Time        `json:"term,omitempty"`
	Status     *constants.Status `json:"status,omitempty"`
	Comments   *string           `json:"comments,omitempty"`
	Investment *float64          `json:"investment,omitempty"`
}
