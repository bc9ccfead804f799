package dto

import "defect-tracker.com/defect-tracker/internal/constants"

// UserRequest doubles as the create payload (all relevant fields set) and
// the partial update payload (empty fields left untouched). Password is the
// plain secret; hashing happens in the user repository.
type UserRequest struct {
	Name     string         `json:"name"`
	Login    string         `json:"login"`
	Password string         `json:"password"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Role     constants.Role `json:"role"`
}
