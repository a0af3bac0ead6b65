package service

import (
	"errors"
	"net/http"

	"github.com/kdduha/pdf-converter/internal/client"
)

// Error carries the HTTP status a handler should answer with.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func badRequest(msg string, err error) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg, Err: err}
}

// Status maps err to a response code and a user-facing message.
func Status(err error) (int, string) {
	var se *Error
	if errors.As(err, &se) {
		return se.Code, se.Message
	}
	var ue *client.StatusError
	if errors.As(err, &ue) {
		return ue.StatusCode, ue.Error()
	}
	return http.StatusInternalServerError, client.DefaultErrorMessage
}
