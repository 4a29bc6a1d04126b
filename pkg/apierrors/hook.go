package apierrors

import "sync"

// Hook observes every Error produced by Build. Hooks must be safe for
// concurrent use; they run synchronously on the goroutine building the error.
type Hook func(*Error)

var (
	hookMu    sync.RWMutex
	errorHook Hook
)

// OnError installs the process-wide hook invoked whenever an Error is built.
// A subsequent call replaces the previous hook; passing nil removes it.
//
//	apierrors.OnError(func(e *apierrors.Error) {
//		log.Error().Int("status", e.Status).Msg(e.Title)
//	})
func OnError(hook Hook) {
	hookMu.Lock()
	defer hookMu.Unlock()
	errorHook = hook
}

// Hooks fans out to several hooks in order, so logging, metrics and error
// reporting can share the single on-error slot.
func Hooks(hooks ...Hook) Hook {
	return func(e *Error) {
		for _, h := range hooks {
			if h != nil {
				h(e)
			}
		}
	}
}

func invokeHook(e *Error) {
	hookMu.RLock()
	hook := errorHook
	hookMu.RUnlock()
	if hook != nil {
		hook(e)
	}
}
