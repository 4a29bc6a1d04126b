package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

// OperationIDHeader carries the per-request operation ID on both the request
// and the response.
const OperationIDHeader = "X-Operation-ID"

// OperationID assigns a unique operation ID to each request that does not
// already carry one, echoing it on the response so callers can quote it in
// support requests. Install it before ErrorInterceptor so the snapshot the
// enrichers see includes the ID.
func OperationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		opID := r.Header.Get(OperationIDHeader)
		if opID == "" {
			opID = uuid.New().String()
			r.Header.Set(OperationIDHeader, opID)
		}
		w.Header().Set(OperationIDHeader, opID)
		next.ServeHTTP(w, r)
	})
}

// OperationIDFromRequest returns the request's operation ID, or "" when the
// OperationID middleware is not installed.
func OperationIDFromRequest(r *http.Request) string {
	return r.Header.Get(OperationIDHeader)
}

// WithOperationID is a stock enricher that copies the operation ID into the
// error metadata.
func WithOperationID(b apierrors.Builder, rc *apierrors.RequestContext) apierrors.Builder {
	if opID := rc.Header.Get(OperationIDHeader); opID != "" {
		b = b.MetaValue("operation_id", opID)
	}
	return b
}
