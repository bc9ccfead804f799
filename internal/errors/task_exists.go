package errors

import "net/http"

var ErrTaskExists = &Exception{
	Message:    "defect already has a task, update it instead",
	StatusCode: http.StatusConflict,
}
