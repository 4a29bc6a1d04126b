package apierrors

import (
	"errors"
	"net/http"

	weberr "github.com/zgalor/weberr"
)

// Convert coerces any error into an *Error.
//
// An *Error anywhere in the chain passes through untouched. A weberr-typed
// error maps its type to the corresponding status code. Everything else
// becomes a 500 with the default title and detail, keeping err as the cause.
// When expose-errors is enabled (SetExposeErrors or OCM_API_ERRORS_EXPOSE)
// the raw error text is copied into Detail.
//
// Convert returns nil for a nil error.
func Convert(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	b := NewBuilder().Cause(err)
	if status, ok := weberrStatus(err); ok {
		b = b.Status(status).Title(http.StatusText(status))
	}
	if ExposeErrors() {
		b = b.Detail(err.Error())
	}
	return b.Build()
}

// weberrStatus maps the weberr error types used across OCM services to HTTP
// status codes.
func weberrStatus(err error) (int, bool) {
	switch weberr.GetType(err) {
	case weberr.BadRequest:
		return http.StatusBadRequest, true
	case weberr.Unauthorized:
		return http.StatusUnauthorized, true
	case weberr.Forbidden:
		return http.StatusForbidden, true
	case weberr.NotFound:
		return http.StatusNotFound, true
	case weberr.Conflict:
		return http.StatusConflict, true
	}
	return 0, false
}
