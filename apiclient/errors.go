package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jrsteele09/temco-admin/internal/errors"
)

// Error is a non-2xx response from the API. Callers inspect it with errors.As.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Body       []byte
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// errorResponse covers the two error shapes the backend uses.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newError(method, path string, status int, body []byte) *Error {
	e := &Error{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       body,
	}
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		if er.Message != "" {
			e.Message = er.Message
		} else {
			e.Message = er.Error
		}
	}
	return e
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an *Error.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsStatus reports whether err is an *Error with the given status.
func IsStatus(err error, status int) bool {
	return StatusCode(err) == status
}

// IsUnavailable reports whether err means the backend could not serve the request:
// a transport failure or a 5xx response. Cancellation is not unavailability.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errContextDone) {
		return false
	}
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	return StatusCode(err) >= http.StatusInternalServerError
}
