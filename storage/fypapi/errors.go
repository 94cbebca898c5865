package fypapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
)

// APIError is a non-2xx response of the backend.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string // `message` field of the body, if any
	Body    string
}

func newAPIError(method, path string, res *rest.Response) *APIError {
	apiErr := &APIError{Method: method, Path: path, Status: res.StatusCode, Body: res.Body}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(res.Body), &payload); err == nil {
		apiErr.Message = strings.TrimSpace(payload.Message)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(payload.Error)
		}
	}
	return apiErr
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, msg)
}

// UserMessage is the backend message meant for users, falling back to the status text.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "Request failed: " + strings.ToLower(http.StatusText(e.Status))
}

// StatusOf returns the HTTP status of the backend error behind err, or 0.
func StatusOf(err error) int {
	if apiErr, ok := errors.Cause(err).(*APIError); ok {
		return apiErr.Status
	}
	return 0
}

func IsNotFound(err error) bool { return StatusOf(err) == http.StatusNotFound }

func IsUnauthorized(err error) bool { return StatusOf(err) == http.StatusUnauthorized }
