// Package logging provides ready-made on-error hooks: a zerolog hook that
// records every constructed API error and a sentry hook that captures server
// errors as events.
package logging

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

// Hook returns an on-error hook that logs every constructed error. Client
// errors (4xx) log at warn level, server errors (5xx) at error level.
//
//	apierrors.OnError(logging.Hook(log.Logger))
func Hook(logger zerolog.Logger) apierrors.Hook {
	return func(e *apierrors.Error) {
		event := logger.Warn()
		if e.Status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event = event.
			Int("status", e.Status).
			Str("title", e.Title).
			Str("detail", e.Detail).
			Err(e.Unwrap())
		if len(e.Meta) > 0 {
			event = event.Interface("meta", e.Meta)
		}
		event.Msg("api error")
	}
}
