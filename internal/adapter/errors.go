package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrMalformedResponse is returned when a response body cannot be decoded
	// or a successful one lacks a required field.
	ErrMalformedResponse = errors.New("malformed server response")
)

// StatusError is a non-2xx server response.
type StatusError struct {
	StatusCode int
	// Detail is the server's "detail" message when it is a string, else "".
	Detail string
	// Malformed is set when the body was not JSON. Such an error also matches
	// [ErrMalformedResponse].
	Malformed bool

	err error
}

func (e *StatusError) Error() string {
	text := e.Detail
	if text == "" {
		text = http.StatusText(e.StatusCode)
	}
	if e.err == nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, text)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.err, text)
}

func (e *StatusError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.err != nil {
		errs = append(errs, e.err)
	}
	if e.Malformed {
		errs = append(errs, ErrMalformedResponse)
	}
	return errs
}
