package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/ghnotify/pkg/controller/server"
	"github.com/m-mizutani/ghnotify/pkg/domain/mock"
	"github.com/m-mizutani/ghnotify/pkg/domain/model"
	"github.com/m-mizutani/ghnotify/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

type testResponse struct {
	Version string `json:"version"`
	Status  int    `json:"status"`
	Reason  string `json:"reason"`
}

func newTestRoute() *model.RouteTable {
	return model.NewRouteTable(&model.Config{
		Server: model.ServerConfig{
			Bind:   "127.0.0.1",
			Port:   8080,
			Secret: "global-secret",
		},
		Telegram: model.TelegramConfig{
			SendTo: []types.ChatID{100},
		},
		Repositories: []model.RepoPolicy{
			{
				FullName:     "org/repo",
				SendTo:       []types.ChatID{111, 222},
				Secret:       "s3cr3t",
				BranchIgnore: []string{"dev"},
			},
			{
				FullName: "org/open",
				SendTo:   []types.ChatID{333},
				// No secret: signature verification is skipped.
			},
		},
	})
}

func newMockUseCase() *mock.UseCaseMock {
	return &mock.UseCaseMock{
		DispatchFunc: func(ctx context.Context, cmd model.Command) error {
			return nil
		},
	}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var resp testResponse
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRouting(t *testing.T) {
	srv := server.New(newMockUseCase(), newTestRoute())

	t.Run("GET / is a health check without authorization", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		resp := decodeResponse(t, rec)
		gt.V(t, resp.Status).Equal(http.StatusOK)
		gt.V(t, resp.Version).Equal(types.AppVersion)
	})

	t.Run("other methods are forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusForbidden)
	})

	t.Run("other paths are forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusForbidden)
	})
}

func TestTokenAuthorization(t *testing.T) {
	pingBody := []byte(`{"zen":"Design for failure.","repository":{"full_name":"org/open"}}`)

	newPing := func(target string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(pingBody))
		req.Header.Set("X-GitHub-Event", "ping")
		return req
	}

	t.Run("configured token rejects requests without it", func(t *testing.T) {
		srv := server.New(newMockUseCase(), newTestRoute(), server.WithAuthToken("tok3n"))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newPing("/"))

		gt.V(t, rec.Code).Equal(http.StatusForbidden)
		gt.V(t, decodeResponse(t, rec).Reason).Equal("forbidden")
	})

	t.Run("configured token rejects a wrong value", func(t *testing.T) {
		srv := server.New(newMockUseCase(), newTestRoute(), server.WithAuthToken("tok3n"))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newPing("/?token=wrong"))

		gt.V(t, rec.Code).Equal(http.StatusForbidden)
	})

	t.Run("configured token accepts a match", func(t *testing.T) {
		srv := server.New(newMockUseCase(), newTestRoute(), server.WithAuthToken("tok3n"))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newPing("/?token=tok3n"))

		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("empty token authorizes everything", func(t *testing.T) {
		srv := server.New(newMockUseCase(), newTestRoute())
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newPing("/"))

		gt.V(t, rec.Code).Equal(http.StatusOK)
	})
}
