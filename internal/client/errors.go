package client

import (
	"errors"
	"fmt"
)

// DefaultErrorMessage is shown when neither the server nor the transport supplied a reason.
const DefaultErrorMessage = "Conversion failed"

// ErrMalformedResponse is returned for a successful status whose body is not a usable result.
var ErrMalformedResponse = errors.New("malformed response")

// StatusError is a non-2xx answer from the conversion endpoint.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return DefaultErrorMessage
	}
	return e.Message
}

// Message extracts the user-facing text for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultErrorMessage
}

func statusErrorf(code int, format string, args ...any) *StatusError {
	return &StatusError{StatusCode: code, Message: fmt.Sprintf(format, args...)}
}
