package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ClientError standardizes errors surfaced to callers of the service layer.
type ClientError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError constructs a ClientError.
func NewClientError(code, message string, status int, details map[string]any) *ClientError {
	return &ClientError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError reports a local pre-submission failure; no request was
// sent.
func NewValidationError(message string, details map[string]any) error {
	return NewClientError("VALIDATION_FAILED", message, 0, details)
}

// NewUnauthorized reports a 401 from the backend. By the time callers see
// this the session has already been cleared.
func NewUnauthorized(message string) error {
	return NewClientError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewTransportError reports a network-level failure (unreachable backend,
// timeout, connection reset).
func NewTransportError(err error) error {
	return &ClientError{
		Code:    "TRANSPORT_ERROR",
		Message: "could not reach the server",
		Err:     err,
	}
}

// apiErrorPayload captures the shapes the backend uses for error bodies. The
// backend is inconsistent across endpoints, so all three fields are probed.
type apiErrorPayload struct {
	Message string          `json:"message"`
	ErrorF  string          `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

// NewAPIError normalizes a non-401 error response into a ClientError. The
// payload fields are tried in fixed priority order: message, then error,
// then errors (stringified), falling back to the HTTP status text.
func NewAPIError(status int, body []byte) error {
	message := ""
	var payload apiErrorPayload
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.Message != "":
			message = payload.Message
		case payload.ErrorF != "":
			message = payload.ErrorF
		case len(payload.Errors) > 0 && string(payload.Errors) != "null":
			message = strings.TrimSpace(string(payload.Errors))
		}
	}
	if message == "" {
		message = fmt.Sprintf("request failed: %s", http.StatusText(status))
	}
	return &ClientError{Code: "API_ERROR", Message: message, HTTPStatus: status}
}

// ToClientError converts generic errors to ClientError.
func ToClientError(err error) *ClientError {
	if err == nil {
		return nil
	}
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr
	}
	return &ClientError{Code: "INTERNAL_ERROR", Message: "unexpected error", Err: err}
}

// IsUnauthorized reports whether err is the global 401 interception result.
func IsUnauthorized(err error) bool {
	ce := ToClientError(err)
	return ce != nil && ce.Code == "UNAUTHORIZED"
}

// IsValidation reports whether err is a local pre-submission failure.
func IsValidation(err error) bool {
	ce := ToClientError(err)
	return ce != nil && ce.Code == "VALIDATION_FAILED"
}
