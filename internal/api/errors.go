package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ErrMalformedResponse marks a 2xx payload that fails boundary validation
// (e.g. a login response without a token). Malformed payloads are rejected
// here instead of leaking untyped blobs into view logic.
var ErrMalformedResponse = errors.New("api: malformed response")

// StatusError is an HTTP failure with the server's message, when the body
// carried one (either a JSON {"message": ...} object or a raw string).
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// HTTPStatus and ServerMessage let callers map failures without importing
// this package's concrete type.
func (e *StatusError) HTTPStatus() int       { return e.Status }
func (e *StatusError) ServerMessage() string { return e.Message }

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == code
}

func statusError(resp *resty.Response) error {
	return &StatusError{
		Status:  resp.StatusCode(),
		Message: extractMessage(resp.Body()),
	}
}

func extractMessage(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
		return ""
	}
	// Plain-text error bodies are surfaced verbatim.
	return s
}
