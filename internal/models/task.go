package model

import (
	"time"

	"defect-tracker.com/defect-tracker/internal/constants"
)

// Task is one immutable version in a defect's remediation history. Rows are
// only ever inserted; the single mutation allowed after insert is flipping
// IsActual from true to false when a newer version supersedes this one.
type Task struct {
	ID          int              `gorm:"primaryKey" json:"id"`
	PublishedAt time.Time        `gorm:"not null;index:idx_tasks_defect_published,priority:2" json:"published_at"`
	DefectID    int              `gorm:"not null;index:idx_tasks_defect_published,priority:1" json:"defect_id"`
	ProjectID   *int             `json:"project_id,omitempty"`
	ExecutorID  *int             `json:"executor_id,omitempty"`
	Term        *time.Time       `json:"term,omitempty"`
	Status      constants.Status `gorm:"not null;default:0" json:"status"`
	Comments    string           `json:"comments,omitempty"`
	Investment  float64          `json:"investment"`
	IsActual    bool             `gorm:"not null;index" json:"is_actual"`

	Defect   *Defect  `gorm:"foreignKey:DefectID" json:"defect,omitempty"`
	Executor *User    `gorm:"foreignKey:ExecutorID" json:"executor,omitempty"`
	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
