// Package apierrors converts errors and absent values into structured HTTP
// error responses. Every error carries a status code, a short title and a
// detailed description, and serializes to a stable JSON body:
//
//	{
//	  "status": 404,
//	  "title": "Not Found",
//	  "detail": "The requested resource does not exist"
//	}
//
// Errors are constructed through a Builder, either directly or via the
// Wrap*/New* shortcuts. Construction runs the process-wide on-error hook
// (see OnError) and, when the error is linked to an intercepted request,
// the registered enricher (see WithEnrichment).
package apierrors

import (
	"fmt"
)

const (
	defaultStatus = 500
	defaultTitle  = "Internal Error"
	defaultDetail = "Something went wrong"
)

// Error is an API error that can be written as an HTTP response.
// The wrapped cause, when present, is available via Unwrap but is never
// serialized to the client.
type Error struct {
	// Status is the HTTP status code for this error.
	Status int `json:"status"`
	// Title is a short, human-readable summary of the error.
	Title string `json:"title"`
	// Detail is a detailed explanation of the error.
	Detail string `json:"detail"`
	// Meta holds optional contextual metadata included in the response body.
	Meta map[string]any `json:"meta,omitempty"`

	cause    error
	enriched bool
}

var _ error = &Error{}

// Error returns "Title: Detail", extended with the cause when one is wrapped.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Title, e.Detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Cause returns the underlying cause, for github.com/pkg/errors compatibility.
func (e *Error) Cause() error {
	return e.cause
}
