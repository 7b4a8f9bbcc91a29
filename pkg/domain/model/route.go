package model

import (
	"github.com/m-mizutani/ghnotify/pkg/domain/types"
)

// RouteTable maps a repository full name to its delivery settings. It
// is built once at startup and safe for concurrent reads.
type RouteTable struct {
	repos         map[types.RepoFullName]RepoPolicy
	defaultSendTo []types.ChatID
	defaultSecret types.WebhookSecret
}

func NewRouteTable(cfg *Config) *RouteTable {
	repos := make(map[types.RepoFullName]RepoPolicy, len(cfg.Repositories))
	for _, repo := range cfg.Repositories {
		repos[repo.FullName] = repo
	}

	return &RouteTable{
		repos:         repos,
		defaultSendTo: cfg.Telegram.SendTo,
		defaultSecret: cfg.Server.Secret,
	}
}

// EffectiveDelivery is the resolved delivery settings for one incoming
// event. An empty Secret means signature verification is skipped.
type EffectiveDelivery struct {
	SendTo       []types.ChatID
	Secret       types.WebhookSecret
	branchIgnore map[string]struct{}
}

func (x *EffectiveDelivery) IgnoresBranch(branch string) bool {
	_, ok := x.branchIgnore[branch]
	return ok
}

// Resolve never fails. An unknown repository gets the global defaults.
// A known repository gets its own destination list unless empty, and
// always its own secret, even when that secret is empty.
func (x *RouteTable) Resolve(fullName types.RepoFullName) EffectiveDelivery {
	repo, ok := x.repos[fullName]
	if !ok {
		return EffectiveDelivery{
			SendTo: x.defaultSendTo,
			Secret: x.defaultSecret,
		}
	}

	sendTo := repo.SendTo
	if len(sendTo) == 0 {
		sendTo = x.defaultSendTo
	}

	ignore := make(map[string]struct{}, len(repo.BranchIgnore))
	for _, branch := range repo.BranchIgnore {
		ignore[branch] = struct{}{}
	}

	return EffectiveDelivery{
		SendTo:       sendTo,
		Secret:       repo.Secret,
		branchIgnore: ignore,
	}
}
