package errors

import "net/http"

var ErrDefectNotFound = &Exception{
	Message:    "defect not found",
	StatusCode: http.StatusNotFound,
}
