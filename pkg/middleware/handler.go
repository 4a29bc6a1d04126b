package middleware

import (
	"net/http"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

// HandlerFunc adapts an error-returning handler to http.Handler. A non-nil
// return is written as a JSON error response through apierrors.Send; the
// handler remains responsible for its own success responses.
//
//	router.Handle("/users/{id}", middleware.HandlerFunc(getUser))
//
//	func getUser(w http.ResponseWriter, r *http.Request) error {
//		user, ok := store.Get(mux.Vars(r)["id"])
//		user, err := apierrors.RequireFound(user, ok, "User Not Found", "No user with that ID")
//		if err != nil {
//			return err
//		}
//		return json.NewEncoder(w).Encode(user)
//	}
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ServeHTTP implements http.Handler.
func (f HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := f(w, r); err != nil {
		apierrors.Send(w, r, err)
	}
}
