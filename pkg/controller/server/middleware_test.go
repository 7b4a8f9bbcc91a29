package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/ghnotify/pkg/controller/server"
	"github.com/m-mizutani/ghnotify/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger with request_id to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(newMockUseCase(), newTestRoute())
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		// The middleware should have put a request-scoped logger into
		// the context, distinct from the default one.
		logger := logging.From(capturedCtx)
		defaultLogger := logging.From(context.Background())
		gt.V(t, logger == defaultLogger).Equal(false)
	})

	t.Run("statusCodeLogger passes status codes through", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusNoContent, http.StatusForbidden} {
			srv := server.New(newMockUseCase(), newTestRoute())
			mux := srv.Mux()
			mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})

			req := httptest.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			gt.V(t, w.Code).Equal(code)
		}
	})
}
