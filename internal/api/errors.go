package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"moneytracker/internal/common"
)

// Generic user-facing messages used when the server gives nothing better.
const (
	msgServerError     = "Erro ao processar a requisição"
	msgConnectionError = "Erro de conexão com o servidor"
)

// Error is the normalized form every remote failure is reduced to
// before it reaches the store: a user-facing message plus the HTTP
// status. Status 0 means the server was never reached (network error
// or timeout).
type Error struct {
	cause   error
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (status %d): %v", e.Message, e.Status, e.cause)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// connectionError normalizes a transport-level failure.
func connectionError(err error) *Error {
	return &Error{Message: msgConnectionError, Status: 0, cause: err}
}

// serverError normalizes a non-2xx response, extracting the message
// from a {"message": ...} body when present. A 404 wraps ErrNotFound
// so callers can match it with errors.Is.
func serverError(resp *http.Response) *Error {
	apiErr := &Error{Message: msgServerError, Status: resp.StatusCode}
	if resp.StatusCode == http.StatusNotFound {
		apiErr.cause = common.ErrNotFound
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}
