package dto

type DefectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    *int   `json:"priority,omitempty"`
}
