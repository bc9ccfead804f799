package model

import "defect-tracker.com/defect-tracker/internal/constants"

type Project struct {
	ID     int              `gorm:"primaryKey" json:"id"`
	Name   string           `gorm:"not null" json:"name"`
	Status constants.Status `gorm:"not null;default:0" json:"status"`
}
