package seatsaero

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the Partner API. The call is not
// retried; the upstream status and message are surfaced as-is.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("seats.aero API error %d: %s", e.StatusCode, e.Message)
}

// TransportError is a network-level failure (DNS, timeout, connection
// reset). The call is not retried; callers may try again later.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("seats.aero request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// newAPIError builds an APIError from a failed response body, pulling the
// upstream message out of the JSON payload when there is one.
func newAPIError(statusCode int, body []byte) *APIError {
	message := strings.TrimSpace(string(body))

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			message = payload.Error
		} else if payload.Message != "" {
			message = payload.Message
		}
	}
	if message == "" {
		message = "no error detail provided"
	}

	return &APIError{StatusCode: statusCode, Message: message}
}
