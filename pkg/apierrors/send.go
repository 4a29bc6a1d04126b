package apierrors

import (
	"encoding/json"
	"net/http"
)

// Send writes err as a JSON error response. The error is first coerced via
// Convert; if the request was routed through the error interceptor and the
// error has not been enriched yet, the registered enricher runs before the
// body is written.
//
// Send is the single serialization point: handlers and framework adapters
// should funnel their failures through it.
func Send(w http.ResponseWriter, r *http.Request, err error) {
	e := Convert(err)
	if e == nil {
		return
	}

	if !e.enriched && r != nil {
		if en, ok := enrichmentFrom(r.Context()); ok {
			b := en.enricher(e.toBuilder(), en.request)
			// The hook already observed this error at build time.
			e = b.finalize()
			e.enriched = true
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	// An encoding failure here leaves the client with the status code only.
	_ = json.NewEncoder(w).Encode(e)
}
