package errors

// Exception is an error that knows which HTTP status it maps to. The echo
// error handler translates any Exception reaching the request boundary.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}
