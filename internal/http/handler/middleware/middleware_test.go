package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Splochev/eth-fetcher/internal/http/handler/middleware"
)

var _ = Describe("Timeout", func() {
	var (
		timeout  *middleware.TimeoutMiddleware
		recorder *httptest.ResponseRecorder
		request  *http.Request
	)

	BeforeEach(func() {
		timeout = middleware.NewTimeoutMiddleware(50 * time.Millisecond)
		recorder = httptest.NewRecorder()
		request = httptest.NewRequest(http.MethodGet, "/eth", nil)
	})

	When("the handler finishes in time", func() {
		It("passes the buffered response through", func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"ok":true}`))
			})

			timeout.Timeout(next).ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(recorder.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(recorder.Body.String()).To(Equal(`{"ok":true}`))
		})
	})

	When("the handler exceeds the limit", func() {
		It("answers with request timeout", func() {
			release := make(chan struct{})
			defer close(release)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-release:
				}
				w.Write([]byte("too late"))
			})

			timeout.Timeout(next).ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusRequestTimeout))
			Expect(recorder.Body.String()).To(Equal("Request Timeout"))
		})
	})
})

var _ = Describe("RequestID", func() {
	It("attaches an id to the context and the response", func() {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/eth", nil)
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(recorder, request)

		Expect(seen).NotTo(BeEmpty())
		Expect(recorder.Header().Get("X-Request-Id")).To(Equal(seen))
	})
})
