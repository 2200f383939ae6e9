package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/seimoney/seimoney-go/payment"
)

// Error codes for non-HTTP failures. HTTP failures use "HTTP_<status>".
const (
	CodeNetworkError = "NETWORK_ERROR"
	CodeUnknownError = "UNKNOWN_ERROR"
)

const (
	networkErrorMessage = "network error - please check your connection"
	unknownErrorMessage = "an unknown error occurred"
)

// Error is the uniform failure shape every module surfaces. Exactly one of
// three codes: HTTP_<status> when the remote answered non-2xx,
// NETWORK_ERROR when no response arrived, UNKNOWN_ERROR otherwise.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatusCode formats the error code for a non-2xx status.
func HTTPStatusCode(status int) string {
	return fmt.Sprintf("HTTP_%d", status)
}

// newHTTPError normalizes a non-2xx response: the message comes from the
// server's message field when present, details carry the raw body.
func newHTTPError(status int, body []byte) *Error {
	message := fmt.Sprintf("request failed with status %d", status)

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}

	return &Error{
		Code:    HTTPStatusCode(status),
		Message: message,
		Details: string(body),
	}
}

// normalizeTransportError maps an http.Client.Do failure. Payment
// construction failures never left the process, so they normalize to
// UNKNOWN_ERROR; everything else sent a request that got no response.
func normalizeTransportError(err error, request string) *Error {
	var payErr *payment.Error
	if errors.As(err, &payErr) {
		return &Error{
			Code:    CodeUnknownError,
			Message: payErr.Message,
			Details: payErr.Error(),
		}
	}

	return &Error{
		Code:    CodeNetworkError,
		Message: networkErrorMessage,
		Details: request,
	}
}

// newUnknownError covers request construction and response decoding
// failures.
func newUnknownError(err error) *Error {
	message := unknownErrorMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &Error{
		Code:    CodeUnknownError,
		Message: message,
		Details: fmt.Sprint(err),
	}
}
