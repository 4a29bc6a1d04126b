// Package ginadapter wires the apierrors response format into the Gin
// framework.
package ginadapter

import (
	"github.com/gin-gonic/gin"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

// Abort writes err as a standard JSON error response and aborts the
// remaining handler chain.
//
//	r.GET("/users/:id", func(c *gin.Context) {
//		user, ok := store.Get(c.Param("id"))
//		if !ok {
//			ginadapter.Abort(c, apierrors.NewNotFound("User Not Found", "No user with that ID"))
//			return
//		}
//		c.JSON(http.StatusOK, user)
//	})
func Abort(c *gin.Context, err error) {
	apierrors.Send(c.Writer, c.Request, err)
	c.Abort()
}

// Interceptor adapts the error interceptor to Gin's middleware interface.
func Interceptor(enricher apierrors.Enricher) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := c.Request
		rc := apierrors.NewRequestContext(r)
		c.Request = r.WithContext(apierrors.WithEnrichment(r.Context(), rc, enricher))
		c.Next()
	}
}

// ErrorReporter returns middleware that, after the chain runs, writes the
// first error recorded via c.Error as a standard JSON error response.
func ErrorReporter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		apierrors.Send(c.Writer, c.Request, c.Errors[0].Err)
	}
}
