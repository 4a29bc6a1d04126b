package apierrors

import (
	"fmt"
	"net/http"
)

// Builder constructs Error instances through a fluent interface, in the
// spirit of the structured loggers used across OCM services. The zero value
// is ready to use; unset fields fall back to 500 / "Internal Error" /
// "Something went wrong".
//
//	err := apierrors.NewBuilder().
//		Status(http.StatusConflict).
//		Title("Conflict").
//		Detail("A user with this email already exists").
//		Cause(dbErr).
//		Build()
type Builder struct {
	status int
	title  string
	detail string
	meta   map[string]any
	cause  error
	req    *http.Request
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder {
	return Builder{}
}

// Status sets the HTTP status code.
func (b Builder) Status(status int) Builder {
	b.status = status
	return b
}

// Title sets the short error summary.
func (b Builder) Title(title string) Builder {
	b.title = title
	return b
}

// Detail sets the detailed explanation.
func (b Builder) Detail(detail string) Builder {
	b.detail = detail
	return b
}

// Detailf sets the detailed explanation from a format string.
func (b Builder) Detailf(format string, args ...any) Builder {
	b.detail = fmt.Sprintf(format, args...)
	return b
}

// Meta replaces the metadata blob attached to the error.
func (b Builder) Meta(meta map[string]any) Builder {
	b.meta = meta
	return b
}

// MetaValue adds a single metadata key. The builder is a value type shared
// by copy, so the map is cloned before mutation.
func (b Builder) MetaValue(key string, value any) Builder {
	meta := make(map[string]any, len(b.meta)+1)
	for k, v := range b.meta {
		meta[k] = v
	}
	meta[key] = value
	b.meta = meta
	return b
}

// Cause sets the underlying error.
func (b Builder) Cause(err error) Builder {
	b.cause = err
	return b
}

// Request links the builder to an HTTP request. When the request was routed
// through the error interceptor middleware, Build applies the registered
// enricher before invoking the on-error hook.
func (b Builder) Request(r *http.Request) Builder {
	b.req = r
	return b
}

// Build finalizes the error. Unset fields receive their defaults, the
// request enricher runs when a request is linked, and the process-wide
// on-error hook observes the result.
func (b Builder) Build() *Error {
	enriched := false
	if b.req != nil {
		if en, ok := enrichmentFrom(b.req.Context()); ok {
			req := b.req
			b = en.enricher(b, en.request)
			b.req = req
			enriched = true
		}
	}

	e := b.finalize()
	e.enriched = enriched
	invokeHook(e)
	return e
}

// finalize applies defaults and materializes the Error without running the
// hook. Used by Build and by Send, which re-enriches already-built errors.
func (b Builder) finalize() *Error {
	if b.status == 0 {
		b.status = defaultStatus
	}
	if b.title == "" {
		b.title = defaultTitle
	}
	if b.detail == "" {
		b.detail = defaultDetail
	}
	return &Error{
		Status: b.status,
		Title:  b.title,
		Detail: b.detail,
		Meta:   b.meta,
		cause:  b.cause,
	}
}

// toBuilder converts an Error back into a Builder, preserving all fields.
func (e *Error) toBuilder() Builder {
	return Builder{
		status: e.Status,
		title:  e.Title,
		detail: e.Detail,
		meta:   e.Meta,
		cause:  e.cause,
	}
}
