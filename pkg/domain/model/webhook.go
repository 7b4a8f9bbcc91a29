package model

import (
	"fmt"
	"html"
	"strings"

	"github.com/m-mizutani/ghnotify/pkg/domain/types"
)

const shortCommitIDLen = 8

// PingEvent is GitHub's webhook installation check. The zen text is
// echoed back to the sender.
type PingEvent struct {
	Zen string
}

type Commit struct {
	ID      string
	Message string
	URL     string
}

// ShortID returns the commit hash truncated to 8 characters.
func (x Commit) ShortID() string {
	if len(x.ID) <= shortCommitIDLen {
		return x.ID
	}
	return x.ID[:shortCommitIDLen]
}

// Subject returns the first line of the commit message.
func (x Commit) Subject() string {
	if idx := strings.IndexByte(x.Message, '\n'); idx >= 0 {
		return x.Message[:idx]
	}
	return x.Message
}

type PushEvent struct {
	RepoFullName types.RepoFullName
	Before       string
	After        string
	Ref          string
	CompareURL   string
	Commits      []Commit
}

// BranchName returns the suffix of the ref after the last path
// separator, e.g. "refs/heads/main" -> "main".
func (x *PushEvent) BranchName() string {
	if idx := strings.LastIndexByte(x.Ref, '/'); idx >= 0 {
		return x.Ref[idx+1:]
	}
	return x.Ref
}

// IsBranchOperation reports whether this push marks a branch creation
// or deletion, signaled by an all-zero before or after hash. Such
// events carry no meaningful diff and must not be delivered.
func (x *PushEvent) IsBranchOperation() bool {
	return isZeroHash(x.Before) || isZeroHash(x.After)
}

func isZeroHash(s string) bool {
	for _, c := range s {
		if c != '0' {
			return false
		}
	}
	return true
}

// Text renders the Telegram message body. Output is HTML (the bot
// sends with HTML parse mode and web preview disabled), so every
// payload-derived string except URLs is escaped.
func (x *PushEvent) Text() string {
	var b strings.Builder

	unit := "commits"
	if len(x.Commits) == 1 {
		unit = "commit"
	}
	fmt.Fprintf(&b, "\U0001F528 <b>%d new %s</b> to <b>%s:%s</b>\n",
		len(x.Commits), unit,
		html.EscapeString(string(x.RepoFullName)),
		html.EscapeString(x.BranchName()),
	)

	for _, commit := range x.Commits {
		fmt.Fprintf(&b, "\n<a href=\"%s\">%s</a>: %s",
			commit.URL,
			html.EscapeString(commit.ShortID()),
			html.EscapeString(commit.Subject()),
		)
	}

	if x.CompareURL != "" {
		fmt.Fprintf(&b, "\n\n<a href=\"%s\">Compare changes</a>", x.CompareURL)
	}

	return b.String()
}
