package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/ghnotify/pkg/domain/interfaces"
	"github.com/m-mizutani/ghnotify/pkg/domain/model"
	"github.com/m-mizutani/ghnotify/pkg/domain/types"
	"github.com/m-mizutani/ghnotify/pkg/utils/errutil"
	"github.com/m-mizutani/ghnotify/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// maxBodySize caps the request body before any parsing happens, to
	// bound memory use against oversized payloads.
	maxBodySize = 262144

	signatureHeader = "X-Hub-Signature-256"
)

// readBody captures at most maxBodySize bytes; anything larger is
// rejected without reading the rest of the stream.
func readBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBodySize+1))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request body")
	}
	if len(body) > maxBodySize {
		return nil, goerr.Wrap(types.ErrBodyOverflow, "request body exceeds limit", goerr.V("limit", maxBodySize))
	}

	return body, nil
}

// repoFullName extracts only the repository identity from the payload.
// This runs before signature verification: the identity selects which
// secret to verify with, and is itself not trusted for anything else.
func repoFullName(body []byte) (types.RepoFullName, error) {
	var hint struct {
		Repository struct {
			FullName string `json:"full_name"`
		} `json:"repository"`
	}
	if err := json.Unmarshal(body, &hint); err != nil {
		return "", goerr.Wrap(err, "failed to parse repository identity")
	}

	return types.RepoFullName(hint.Repository.FullName), nil
}

func parsePingEvent(body []byte) (*model.PingEvent, error) {
	raw, err := github.ParseWebHook("ping", body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse ping event")
	}
	event := raw.(*github.PingEvent)

	return &model.PingEvent{Zen: event.GetZen()}, nil
}

func parsePushEvent(body []byte) (*model.PushEvent, error) {
	raw, err := github.ParseWebHook("push", body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse push event")
	}
	event := raw.(*github.PushEvent)

	commits := make([]model.Commit, 0, len(event.Commits))
	for _, commit := range event.Commits {
		commits = append(commits, model.Commit{
			ID:      commit.GetID(),
			Message: commit.GetMessage(),
			URL:     commit.GetURL(),
		})
	}

	return &model.PushEvent{
		RepoFullName: types.RepoFullName(event.GetRepo().GetFullName()),
		Before:       event.GetBefore(),
		After:        event.GetAfter(),
		Ref:          event.GetRef(),
		CompareURL:   event.GetCompare(),
		Commits:      commits,
	}, nil
}

func handleWebhook(uc interfaces.UseCase, route *model.RouteTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.From(ctx)

		body, err := readBody(r.Body)
		if err != nil {
			if errors.Is(err, types.ErrBodyOverflow) {
				respond(w, http.StatusBadRequest, "overflow")
				return
			}
			errutil.HandleError(ctx, "fail to read webhook body", err)
			respond(w, http.StatusInternalServerError, "failed to read request body")
			return
		}

		fullName, err := repoFullName(body)
		if err != nil {
			errutil.HandleError(ctx, "fail to pre-parse webhook payload", err)
			logger.Error("raw webhook payload", slog.String("body", string(body)))
			respond(w, http.StatusInternalServerError, err.Error())
			return
		}

		delivery := route.Resolve(fullName)

		if err := model.VerifySignature(delivery.Secret, body, r.Header.Get(signatureHeader)); err != nil {
			if errors.Is(err, types.ErrSignatureMissing) {
				respond(w, http.StatusForbidden, "signature header missing")
			} else {
				respond(w, http.StatusForbidden, "signature mismatch")
			}
			return
		}

		kind := github.WebHookType(r)
		switch kind {
		case "ping":
			event, err := parsePingEvent(body)
			if err != nil {
				errutil.HandleError(ctx, "fail to parse ping event", err)
				logger.Error("raw webhook payload", slog.String("body", string(body)))
				respond(w, http.StatusInternalServerError, err.Error())
				return
			}
			respond(w, http.StatusOK, event.Zen)

		case "push":
			event, err := parsePushEvent(body)
			if err != nil {
				errutil.HandleError(ctx, "fail to parse push event", err)
				logger.Error("raw webhook payload", slog.String("body", string(body)))
				respond(w, http.StatusInternalServerError, err.Error())
				return
			}

			if event.IsBranchOperation() {
				respondNoContent(w)
				return
			}
			if delivery.IgnoresBranch(event.BranchName()) {
				logger.Info("skipped push to ignored branch",
					slog.String("repo", string(fullName)),
					slog.String("branch", event.BranchName()),
				)
				respondNoContent(w)
				return
			}

			if err := uc.Dispatch(ctx, model.SendCommand{
				SendTo: delivery.SendTo,
				Text:   event.Text(),
			}); err != nil {
				errutil.HandleError(ctx, "fail to enqueue delivery", err)
				respond(w, http.StatusInternalServerError, "failed to enqueue delivery")
				return
			}
			respond(w, http.StatusOK, "ok")

		default:
			respond(w, http.StatusBadRequest, fmt.Sprintf("unsupported event type %q", kind))
		}
	}
}
