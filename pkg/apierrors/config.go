package apierrors

import (
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// exposeFlag accepts "1" or "true" in any case; everything else disables
// the toggle.
type exposeFlag bool

func (f *exposeFlag) Decode(value string) error {
	*f = exposeFlag(value == "1" || strings.EqualFold(value, "true"))
	return nil
}

// Exposing raw error text is useful in development but leaks internals in
// production, so it is off unless explicitly enabled.
type envSettings struct {
	ExposeErrors exposeFlag `envconfig:"OCM_API_ERRORS_EXPOSE"`
}

var (
	configMu     sync.RWMutex
	exposeErrors bool
)

func init() {
	var settings envSettings
	if err := envconfig.Process("", &settings); err == nil {
		exposeErrors = bool(settings.ExposeErrors)
	}
}

// SetExposeErrors toggles whether Convert copies the raw error text into the
// Detail field. Overrides the OCM_API_ERRORS_EXPOSE environment variable,
// which enables the toggle when set to "1" or "true" in any case.
func SetExposeErrors(expose bool) {
	configMu.Lock()
	defer configMu.Unlock()
	exposeErrors = expose
}

// ExposeErrors reports whether raw error text is copied into error details.
func ExposeErrors() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return exposeErrors
}
