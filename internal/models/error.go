package models

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDataNotFound    = errors.New("data not found")
	ErrValidation      = errors.New("validation failed")
	ErrDialogClosed    = errors.New("dialog is not open")
	ErrSubmitInFlight  = errors.New("submission already in flight")
	ErrUnknownPlatform = errors.New("platform does not exist")
	ErrUnknownStatus   = errors.New("status does not exist")
)

// TransportError is a network level failure, the backend was not reached or did not answer
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError is a non-2xx answer of the backend
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return e.Message(fmt.Sprintf("remote request failed: %d %s", e.StatusCode, http.StatusText(e.StatusCode)))
}

// Message returns the server provided text, or fallback when the body was empty
func (e *RemoteError) Message(fallback string) string {
	if e.Body != "" {
		return e.Body
	}
	return fallback
}

// DecodeError is a malformed JSON answer
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
