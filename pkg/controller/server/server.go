package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ghnotify/pkg/domain/interfaces"
	"github.com/m-mizutani/ghnotify/pkg/domain/model"
	"github.com/m-mizutani/ghnotify/pkg/domain/types"
	"github.com/m-mizutani/ghnotify/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

type apiResponse struct {
	Version string `json:"version"`
	Status  int    `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

// respond writes the {version, status, reason} JSON body shared by all
// non-204 responses.
func respond(w http.ResponseWriter, code int, reason string) {
	body, err := json.Marshal(apiResponse{
		Version: types.AppVersion,
		Status:  code,
		Reason:  reason,
	})
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

// respondNoContent is for the skipped and zero-hash cases. A 204 must
// not carry a body.
func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

type config struct {
	authToken types.AuthToken
}

type Option func(*config)

// WithAuthToken enables query-string token authorization on the
// webhook route. An empty token authorizes every request.
func WithAuthToken(token types.AuthToken) Option {
	return func(cfg *config) {
		cfg.authToken = token
	}
}

func New(uc interfaces.UseCase, route *model.RouteTable, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	forbidden := func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusForbidden, "forbidden")
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.NotFound(forbidden)
	r.MethodNotAllowed(forbidden)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, "ok")
	})
	r.With(authorize(cfg.authToken)).Post("/", handleWebhook(uc, route))

	return &Server{
		mux: r,
	}
}

// authorize compares the token query parameter against the configured
// credential. The health check route is not guarded.
func authorize(token types.AuthToken) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" {
				given := r.URL.Query().Get("token")
				if subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
					respond(w, http.StatusForbidden, "forbidden")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
