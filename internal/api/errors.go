package api

import (
	"errors"
	"fmt"
)

// ErrNoFileSelected is returned when a classification is requested without an
// image.
var ErrNoFileSelected = errors.New("no file selected")

// InvalidModelError reports a model identifier outside the served set.
type InvalidModelError struct {
	ID string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("unknown model %q (available: %s, %s)", e.ID, ModelVGG16, ModelResNet50)
}

// TransportError wraps a network-level failure: connection refused, DNS,
// client timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot reach classification service: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response. Message holds the backend's error field
// when it sent one and is rendered verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("classification service returned status %d", e.StatusCode)
}

// MalformedResponseError reports a 2xx body that violates the prediction
// schema.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from classification service: %s", e.Reason)
}
