package errors

import "net/http"

var ErrLoginTaken = &Exception{
	Message:    "user with this login already exists",
	StatusCode: http.StatusConflict,
}
