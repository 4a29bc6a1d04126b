// Package echoadapter wires the apierrors response format into the Echo
// framework.
package echoadapter

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

// Send writes err as a standard JSON error response. Use it from handlers
// that want to short-circuit with an API error:
//
//	e.GET("/users/:id", func(c echo.Context) error {
//		user, ok := store.Get(c.Param("id"))
//		if !ok {
//			return echoadapter.Send(c, apierrors.NewNotFound("User Not Found", "No user with that ID"))
//		}
//		return c.JSON(http.StatusOK, user)
//	})
func Send(c echo.Context, err error) error {
	apierrors.Send(c.Response().Writer, c.Request(), err)
	return nil
}

// Interceptor adapts the error interceptor to Echo's middleware interface.
func Interceptor(enricher apierrors.Enricher) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			rc := apierrors.NewRequestContext(r)
			c.SetRequest(r.WithContext(apierrors.WithEnrichment(r.Context(), rc, enricher)))
			return next(c)
		}
	}
}

// HTTPErrorHandler returns an echo.HTTPErrorHandler producing the standard
// error body for every error escaping a handler, including Echo's own
// *echo.HTTPError (e.g. 404s from the router).
//
//	e := echo.New()
//	e.HTTPErrorHandler = echoadapter.HTTPErrorHandler()
func HTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok {
			err = apierrors.NewBuilder().
				Status(he.Code).
				Title(http.StatusText(he.Code)).
				Detail(fmt.Sprintf("%v", he.Message)).
				Cause(he.Internal).
				Build()
		}
		apierrors.Send(c.Response().Writer, c.Request(), err)
	}
}
