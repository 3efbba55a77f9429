package middleware

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"
)

const timeoutBody = "Request Timeout"

// TimeoutMiddleware aborts the whole exchange with 408 when a request runs
// longer than the limit. The stdlib TimeoutHandler answers 503, which is the
// wrong status for a client-facing deadline, hence this variant of the same
// buffered-writer scheme.
type TimeoutMiddleware struct {
	limit time.Duration
}

func NewTimeoutMiddleware(limit time.Duration) *TimeoutMiddleware {
	return &TimeoutMiddleware{
		limit: limit,
	}
}

func (m *TimeoutMiddleware) Timeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), m.limit)
		defer cancel()

		tw := &timeoutWriter{header: make(http.Header)}
		done := make(chan struct{})
		go func() {
			next.ServeHTTP(tw, r.WithContext(ctx))
			close(done)
		}()

		select {
		case <-done:
			tw.flushTo(w)
		case <-ctx.Done():
			tw.markTimedOut()
			w.WriteHeader(http.StatusRequestTimeout)
			w.Write([]byte(timeoutBody))
		}
	})
}

// timeoutWriter buffers the inner handler's response so nothing reaches the
// wire after a timeout response has been sent.
type timeoutWriter struct {
	mu       sync.Mutex
	header   http.Header
	body     bytes.Buffer
	code     int
	timedOut bool
}

func (t *timeoutWriter) Header() http.Header {
	return t.header
}

func (t *timeoutWriter) Write(b []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	return t.body.Write(b)
}

func (t *timeoutWriter) WriteHeader(code int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timedOut || t.code != 0 {
		return
	}
	t.code = code
}

func (t *timeoutWriter) markTimedOut() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timedOut = true
}

func (t *timeoutWriter) flushTo(w http.ResponseWriter) {
	t.mu.Lock()
	defer t.mu.Unlock()

	dst := w.Header()
	for k, v := range t.header {
		dst[k] = v
	}
	if t.code == 0 {
		t.code = http.StatusOK
	}
	w.WriteHeader(t.code)
	w.Write(t.body.Bytes())
}
