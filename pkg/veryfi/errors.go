package veryfi

import (
	"encoding/json"
	"fmt"

	httpclient "github.com/natserract/veryfi/pkg/http"
)

// ConfigurationError reports malformed credentials, such as a username
// without an API key or an attempt to sign with an empty secret.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("veryfi: configuration error: %s", e.Reason)
}

// ValidationError reports caller-supplied arguments that violate a
// required-field contract before any request is issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("veryfi: validation error: %s", e.Reason)
}

// TransportError wraps a network-level failure (connection refused, timeout,
// DNS failure) that happened before a response was obtained.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("veryfi: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SerializationError reports a request payload that could not be encoded to
// JSON, or a response body that could not be decoded.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("veryfi: serialization error: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// APIError is returned whenever the service answers with a status outside
// the success set. It carries enough to reconstruct the failure.
type APIError struct {
	StatusCode int
	Message    string
	RawBody    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("veryfi: api error: status %d: %s", e.StatusCode, e.Message)
}

// apiErrorFromResponse maps a non-success response uniformly, regardless of
// which operation triggered it. The service reports failures as
// {"error": "..."}; anything else falls back to the raw body.
func apiErrorFromResponse(resp *httpclient.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RawBody:    string(resp.Body),
	}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body, &envelope); err == nil {
		switch {
		case envelope.Error != "":
			apiErr.Message = envelope.Error
		case envelope.Message != "":
			apiErr.Message = envelope.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = string(resp.Body)
	}

	return apiErr
}
