package apierrors

import (
	"context"
	"net/http"
	"net/url"
)

// RequestContext is a snapshot of the request metadata available to an
// Enricher: the HTTP method, the request URI and the request headers.
type RequestContext struct {
	Method string
	URI    *url.URL
	Header http.Header
}

// NewRequestContext captures the enrichment-relevant parts of a request.
// The header map is cloned so the snapshot is stable for the lifetime of
// the request.
func NewRequestContext(r *http.Request) *RequestContext {
	return &RequestContext{
		Method: r.Method,
		URI:    r.URL,
		Header: r.Header.Clone(),
	}
}

// Enricher amends the builder of every error constructed within an
// intercepted request, typically by attaching request metadata:
//
//	func(b apierrors.Builder, rc *apierrors.RequestContext) apierrors.Builder {
//		return b.MetaValue("method", rc.Method).MetaValue("uri", rc.URI.String())
//	}
type Enricher func(b Builder, rc *RequestContext) Builder

type enrichment struct {
	request  *RequestContext
	enricher Enricher
}

type contextKey int

const enrichmentKey contextKey = iota

// WithEnrichment stores the request snapshot and enricher in the context.
// The middleware package installs this for every request it intercepts;
// Builder.Request and Send consult it.
func WithEnrichment(ctx context.Context, rc *RequestContext, enricher Enricher) context.Context {
	if enricher == nil {
		return ctx
	}
	return context.WithValue(ctx, enrichmentKey, &enrichment{request: rc, enricher: enricher})
}

func enrichmentFrom(ctx context.Context) (*enrichment, bool) {
	en, ok := ctx.Value(enrichmentKey).(*enrichment)
	return en, ok && en != nil
}
