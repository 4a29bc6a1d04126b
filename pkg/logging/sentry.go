package logging

import (
	"crypto/md5"
	"encoding/hex"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

// SentryHook returns an on-error hook that captures 5xx errors as sentry
// events on the given hub. A nil hub falls back to sentry.CurrentHub at
// capture time. Client errors (4xx) are expected request outcomes and are
// not reported.
func SentryHook(hub *sentry.Hub) apierrors.Hook {
	return func(e *apierrors.Error) {
		if e.Status < http.StatusInternalServerError {
			return
		}

		event := sentry.NewEvent()
		event.Level = sentry.LevelError
		event.Message = e.Error()
		// Group by message rather than by stack, so the same API error
		// lands in the same issue regardless of the call site.
		event.Fingerprint = []string{fingerprint(event.Message)}
		event.Extra = map[string]any{
			"status": e.Status,
			"title":  e.Title,
			"detail": e.Detail,
		}
		for k, v := range e.Meta {
			event.Extra[k] = v
		}

		target := hub
		if target == nil {
			target = sentry.CurrentHub()
		}
		if target != nil {
			target.CaptureEvent(event)
		}
	}
}

func fingerprint(text string) string {
	hasher := md5.New()
	hasher.Write([]byte(text))
	return hex.EncodeToString(hasher.Sum(nil))
}
