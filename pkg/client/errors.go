package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMalformedResponse matches every *MalformedResponseError
	ErrMalformedResponse = errors.New("malformed response")
	// ErrRejected matches every *RejectedError
	ErrRejected = errors.New("request rejected by backend")

	ErrMissingParam     = errors.New("missing endpoint parameter")
	ErrCareerIDRequired = errors.New("career ID is required")
	ErrInvalidStatus    = errors.New("invalid status")
	// ErrInvalidRequest is returned before any request is sent
	ErrInvalidRequest = errors.New("invalid request")
)

// TransportError is returned when no response was received at all
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: request failed: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is returned for non-2xx responses
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d %s %s: %s", e.StatusCode, e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d %s %s", e.StatusCode, e.Method, e.URL)
}

func newAPIError(method, url string, status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Method:     method,
		URL:        url,
		Body:       body,
	}

	var payload struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			apiErr.Message = payload.Message
		case payload.Error != nil:
			if s, ok := payload.Error.(string); ok {
				apiErr.Message = s
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}

// MalformedResponseError reports a 2xx response whose envelope does not
// have the expected shape
type MalformedResponseError struct {
	Endpoint string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.Endpoint, e.Reason)
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// RejectedError reports a well-formed envelope with success=false on a
// mutation
type RejectedError struct {
	Endpoint string
	Message  string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: request rejected", e.Endpoint)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an HTTP 404
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err is an HTTP 401
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}
