package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

// Deprecation response headers.
const (
	DeprecationHeader        = "Deprecation"
	DeprecationMessageHeader = "X-Deprecation-Message"
)

// DeprecatedEndpoint describes a deprecated API endpoint: the message shown
// to callers and the date after which the endpoint stops serving.
type DeprecatedEndpoint struct {
	Message    string
	SunsetDate time.Time
}

// Deprecation returns middleware that advertises endpoint deprecation.
// Requests to a deprecated endpoint receive deprecation headers until the
// sunset date; after it, the middleware short-circuits with a standard
// 410 Gone error response. Keys are URL path patterns, with path parameters
// in curly braces:
//
//	router.Use(middleware.Deprecation(map[string]middleware.DeprecatedEndpoint{
//		"/api/v1/users/{id}": {Message: "use /api/v2/users", SunsetDate: sunset},
//	}))
func Deprecation(endpoints map[string]DeprecatedEndpoint) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			endpoint, deprecated := matchDeprecatedEndpoint(r.URL.Path, endpoints)
			if deprecated {
				if time.Now().UTC().After(endpoint.SunsetDate) {
					apierrors.Send(w, r, apierrors.NewBuilder().
						Status(http.StatusGone).
						Title("Gone").
						Detail(endpoint.Message).
						Request(r).
						Build())
					return
				}
				w.Header().Set(DeprecationHeader, endpoint.SunsetDate.Format(time.RFC3339))
				w.Header().Set(DeprecationMessageHeader, endpoint.Message)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// matchDeprecatedEndpoint checks whether the path matches a deprecated
// endpoint, directly or through a pattern with path parameters.
func matchDeprecatedEndpoint(path string, endpoints map[string]DeprecatedEndpoint) (DeprecatedEndpoint, bool) {
	if endpoint, exists := endpoints[path]; exists {
		return endpoint, true
	}
	for pattern, endpoint := range endpoints {
		if matchesPattern(path, pattern) {
			return endpoint, true
		}
	}
	return DeprecatedEndpoint{}, false
}

func matchesPattern(path, pattern string) bool {
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	if len(pathParts) != len(patternParts) {
		return false
	}
	for i, patternPart := range patternParts {
		if strings.HasPrefix(patternPart, "{") && strings.HasSuffix(patternPart, "}") {
			continue
		}
		if pathParts[i] != patternPart {
			return false
		}
	}
	return true
}
