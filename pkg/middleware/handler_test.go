package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

var _ = Describe("Handler Adapter", func() {
	var responseRecorder *httptest.ResponseRecorder

	BeforeEach(func() {
		responseRecorder = httptest.NewRecorder()
	})

	Context("when the handler succeeds", func() {
		It("writes the handler's own response untouched", func() {
			handler := HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
				w.WriteHeader(http.StatusCreated)
				return json.NewEncoder(w).Encode(map[string]string{"id": "42"})
			})

			req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
			handler.ServeHTTP(responseRecorder, req)

			Expect(responseRecorder.Code).To(Equal(http.StatusCreated))
			Expect(responseRecorder.Body.String()).To(MatchJSON(`{"id": "42"}`))
		})
	})

	Context("when the handler returns an API error", func() {
		It("writes the standard error body", func() {
			handler := HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
				return apierrors.NewUnauthenticated("Unauthenticated", "No valid authentication token provided")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			handler.ServeHTTP(responseRecorder, req)

			Expect(responseRecorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(responseRecorder.Body.String()).To(MatchJSON(`{
				"status": 401,
				"title": "Unauthenticated",
				"detail": "No valid authentication token provided"
			}`))
		})
	})

	Context("when the handler returns a plain error", func() {
		It("converts it to a 500 response", func() {
			handler := HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
				return errors.New("connection refused")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			handler.ServeHTTP(responseRecorder, req)

			Expect(responseRecorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(responseRecorder.Body.String()).To(MatchJSON(`{
				"status": 500,
				"title": "Internal Error",
				"detail": "Something went wrong"
			}`))
		})
	})
})
