package apierrors

import "net/http"

// New builds a fresh Error with the given status, title and detail.
func New(status int, title, detail string) *Error {
	return NewBuilder().Status(status).Title(title).Detail(detail).Build()
}

// NewBadRequest builds a 400 Bad Request error.
func NewBadRequest(title, detail string) *Error {
	return New(http.StatusBadRequest, title, detail)
}

// NewUnauthenticated builds a 401 Unauthorized error, for authentication
// failures (missing or invalid credentials).
func NewUnauthenticated(title, detail string) *Error {
	return New(http.StatusUnauthorized, title, detail)
}

// NewUnauthorized builds a 403 Forbidden error, for authorization failures
// (authenticated but lacking permission).
func NewUnauthorized(title, detail string) *Error {
	return New(http.StatusForbidden, title, detail)
}

// NewNotFound builds a 404 Not Found error.
func NewNotFound(title, detail string) *Error {
	return New(http.StatusNotFound, title, detail)
}

// NewInternal builds a 500 Internal Server Error.
func NewInternal(title, detail string) *Error {
	return New(http.StatusInternalServerError, title, detail)
}

// Wrap converts a failure into an Error with the given status, title and
// detail, keeping err as the cause. A nil err passes through as nil, so
// calls compose with the usual error flow:
//
//	user, err := store.Lookup(id)
//	if apiErr := apierrors.WrapNotFound(err, "User Not Found", "No user with that ID"); apiErr != nil {
//		return apiErr
//	}
func Wrap(err error, status int, title, detail string) *Error {
	if err == nil {
		return nil
	}
	return NewBuilder().Status(status).Title(title).Detail(detail).Cause(err).Build()
}

// WrapBadRequest converts a failure into a 400 Bad Request error.
func WrapBadRequest(err error, title, detail string) *Error {
	return Wrap(err, http.StatusBadRequest, title, detail)
}

// WrapUnauthorized converts a failure into a 401 Unauthorized error.
func WrapUnauthorized(err error, title, detail string) *Error {
	return Wrap(err, http.StatusUnauthorized, title, detail)
}

// WrapForbidden converts a failure into a 403 Forbidden error.
func WrapForbidden(err error, title, detail string) *Error {
	return Wrap(err, http.StatusForbidden, title, detail)
}

// WrapNotFound converts a failure into a 404 Not Found error.
func WrapNotFound(err error, title, detail string) *Error {
	return Wrap(err, http.StatusNotFound, title, detail)
}

// WrapMethodNotAllowed converts a failure into a 405 Method Not Allowed error.
func WrapMethodNotAllowed(err error, title, detail string) *Error {
	return Wrap(err, http.StatusMethodNotAllowed, title, detail)
}

// WrapConflict converts a failure into a 409 Conflict error.
func WrapConflict(err error, title, detail string) *Error {
	return Wrap(err, http.StatusConflict, title, detail)
}

// WrapUnprocessable converts a failure into a 422 Unprocessable Entity error.
func WrapUnprocessable(err error, title, detail string) *Error {
	return Wrap(err, http.StatusUnprocessableEntity, title, detail)
}

// WrapTooManyRequests converts a failure into a 429 Too Many Requests error.
func WrapTooManyRequests(err error, title, detail string) *Error {
	return Wrap(err, http.StatusTooManyRequests, title, detail)
}

// WrapInternal converts a failure into a 500 Internal Server Error.
func WrapInternal(err error, title, detail string) *Error {
	return Wrap(err, http.StatusInternalServerError, title, detail)
}

// WrapBadGateway converts a failure into a 502 Bad Gateway error.
func WrapBadGateway(err error, title, detail string) *Error {
	return Wrap(err, http.StatusBadGateway, title, detail)
}

// WrapUnavailable converts a failure into a 503 Service Unavailable error.
func WrapUnavailable(err error, title, detail string) *Error {
	return Wrap(err, http.StatusServiceUnavailable, title, detail)
}

// WrapGatewayTimeout converts a failure into a 504 Gateway Timeout error.
func WrapGatewayTimeout(err error, title, detail string) *Error {
	return Wrap(err, http.StatusGatewayTimeout, title, detail)
}

// Require converts an absent value into an Error using the comma-ok idiom:
//
//	user, ok := store.Get(id)
//	user, err := apierrors.Require(user, ok, http.StatusNotFound, "User Not Found", "No user with that ID")
func Require[T any](v T, ok bool, status int, title, detail string) (T, error) {
	if ok {
		return v, nil
	}
	var zero T
	return zero, New(status, title, detail)
}

// RequireFound is Require with a 404 Not Found status, the common lookup case.
func RequireFound[T any](v T, ok bool, title, detail string) (T, error) {
	return Require(v, ok, http.StatusNotFound, title, detail)
}

// RequireNotNil converts a nil pointer into an Error.
func RequireNotNil[T any](p *T, status int, title, detail string) (*T, error) {
	return Require(p, p != nil, status, title, detail)
}
