package dto

import (
	"defect-tracker.com/defect-tracker/internal/constants"
	model "defect-tracker.com/defect-tracker/internal/models"
)

type UserResponse struct {
	ID    int            `json:"id"`
	Name  string         `json:"name"`
	Login string         `json:"login"`
	Email string         `json:"email"`
	Phone string         `json:"phone"`
	Role  constants.Role `json:"role"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Login: u.Login,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
