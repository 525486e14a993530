package errors

import "fmt"

// HTTPError is an error that carries the HTTP status and the client-facing message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError creates an HTTPError whose status code equals code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: code,
	}
}

// NewHTTPErrorWithStatus creates an HTTPError with a business code distinct from the HTTP status.
func NewHTTPErrorWithStatus(code int, message string, status int) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: status,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
