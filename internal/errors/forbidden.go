package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "insufficient role",
	StatusCode: http.StatusForbidden,
}
