// Package middleware provides the request-interception layer: net/http
// middleware that captures request context for error enrichment, a handler
// adapter that turns error-returning handlers into http.Handlers, and an
// operation ID middleware for request tracing.
package middleware

import (
	"net/http"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

// ErrorInterceptor returns middleware that snapshots each request's method,
// URI and headers and registers the enricher for it. Every error built with
// Builder.Request or written with apierrors.Send during the request is
// enriched with that snapshot.
//
//	router.Use(middleware.ErrorInterceptor(middleware.RequestInfo))
func ErrorInterceptor(enricher apierrors.Enricher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := apierrors.NewRequestContext(r)
			ctx := apierrors.WithEnrichment(r.Context(), rc, enricher)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Enrichers chains several enrichers into one, applied in order.
func Enrichers(enrichers ...apierrors.Enricher) apierrors.Enricher {
	return func(b apierrors.Builder, rc *apierrors.RequestContext) apierrors.Builder {
		for _, enrich := range enrichers {
			if enrich != nil {
				b = enrich(b, rc)
			}
		}
		return b
	}
}

// RequestInfo is a stock enricher that records the request method and URI in
// the error metadata.
func RequestInfo(b apierrors.Builder, rc *apierrors.RequestContext) apierrors.Builder {
	return b.MetaValue("method", rc.Method).MetaValue("uri", rc.URI.String())
}
