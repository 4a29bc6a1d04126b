package middleware

import (
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/openshift-online/ocm-api-errors/pkg/apierrors"
)

var _ = Describe("Error Interceptor", func() {
	var (
		router           *mux.Router
		responseRecorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		router = mux.NewRouter()
		responseRecorder = httptest.NewRecorder()
	})

	Context("when a handler builds an error linked to the request", func() {
		It("enriches the error with the request snapshot", func() {
			router.Use(ErrorInterceptor(RequestInfo))
			router.HandleFunc("/api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
				err := apierrors.NewBuilder().
					Status(http.StatusNotFound).
					Title("User Not Found").
					Detail("No user with that ID").
					Request(r).
					Build()
				apierrors.Send(w, r, err)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
			router.ServeHTTP(responseRecorder, req)

			Expect(responseRecorder.Code).To(Equal(http.StatusNotFound))
			Expect(responseRecorder.Body.String()).To(MatchJSON(`{
				"status": 404,
				"title": "User Not Found",
				"detail": "No user with that ID",
				"meta": {"method": "GET", "uri": "/api/users/42"}
			}`))
		})
	})

	Context("when the interceptor is not installed", func() {
		It("leaves errors unenriched", func() {
			router.HandleFunc("/api/users/{id}", func(w http.ResponseWriter, r *http.Request) {
				apierrors.Send(w, r, apierrors.NewNotFound("User Not Found", "No user with that ID"))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
			router.ServeHTTP(responseRecorder, req)

			Expect(responseRecorder.Body.String()).To(MatchJSON(`{
				"status": 404,
				"title": "User Not Found",
				"detail": "No user with that ID"
			}`))
		})
	})

	Context("with chained enrichers", func() {
		It("applies them in order", func() {
			first := func(b apierrors.Builder, rc *apierrors.RequestContext) apierrors.Builder {
				return b.MetaValue("source", "first")
			}
			second := func(b apierrors.Builder, rc *apierrors.RequestContext) apierrors.Builder {
				return b.MetaValue("source", "second").MetaValue("method", rc.Method)
			}
			router.Use(ErrorInterceptor(Enrichers(first, second)))
			router.Handle("/fail", HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
				return apierrors.NewBadRequest("Bad Request", "Invalid input")
			}))

			req := httptest.NewRequest(http.MethodPost, "/fail", nil)
			router.ServeHTTP(responseRecorder, req)

			Expect(responseRecorder.Body.String()).To(MatchJSON(`{
				"status": 400,
				"title": "Bad Request",
				"detail": "Invalid input",
				"meta": {"source": "second", "method": "POST"}
			}`))
		})
	})

	Context("when the request snapshot is captured", func() {
		It("exposes method, URI and headers to the enricher", func() {
			var captured *apierrors.RequestContext
			enricher := func(b apierrors.Builder, rc *apierrors.RequestContext) apierrors.Builder {
				captured = rc
				return b
			}
			router.Use(ErrorInterceptor(enricher))
			router.Handle("/api/clusters", HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
				return apierrors.NewBadRequest("Bad Request", "Invalid input")
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/clusters?page=2", nil)
			req.Header.Set("User-Agent", "ocm-cli/1.0")
			router.ServeHTTP(responseRecorder, req)

			Expect(captured).NotTo(BeNil())
			Expect(captured.Method).To(Equal(http.MethodPost))
			Expect(captured.URI.String()).To(Equal("/api/clusters?page=2"))
			Expect(captured.Header.Get("User-Agent")).To(Equal("ocm-cli/1.0"))
		})
	})
})
