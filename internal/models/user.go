package model

import "defect-tracker.com/defect-tracker/internal/constants"

// User's PasswordHash never leaves the service; handlers answer with
// dto.UserResponse instead of this struct.
type User struct {
	ID           int            `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:256;not null" json:"name"`
	Login        string         `gorm:"size:128;not null;uniqueIndex" json:"login"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Role         constants.Role `gorm:"not null;default:0" json:"role"`
}
