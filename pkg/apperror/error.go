// Package apperror carries HTTP-coded failures from the usecases to the
// delivery layer, where the error middleware maps them onto the
// response envelope.
package apperror

import "net/http"

// AppError pairs a client-facing message with the status code it should
// surface as. Err, when set, is the underlying cause; it is logged
// server-side and never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Internal wraps a backend failure. The client sees a generic 500 it
// can retry; the cause stays in the server logs.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
