package event

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedPayload means the event type is one we handle but the payload is
// not usable (invalid JSON, or the required nested object is missing).
var ErrMalformedPayload = errors.New("malformed webhook payload")

const branchRefPrefix = "refs/heads/"

// authorFallback is recorded when no actor can be extracted from the payload.
const authorFallback = "Unknown"

// Minimal envelope of the GitHub payload. Optional nesting is modeled with
// pointers so a partial payload decodes without error and degrades to defaults.
type envelope struct {
	Action      string       `json:"action"`
	After       string       `json:"after"`
	Ref         string       `json:"ref"`
	Repository  *repository  `json:"repository"`
	Pusher      *pusher      `json:"pusher"`
	Sender      *user        `json:"sender"`
	PullRequest *pullRequest `json:"pull_request"`
}

type repository struct {
	FullName string `json:"full_name"`
}

type pusher struct {
	Name string `json:"name"`
}

type user struct {
	Login string `json:"login"`
}

type pullRequest struct {
	ID     int64   `json:"id"`
	Merged bool    `json:"merged"`
	User   *user   `json:"user"`
	Head   *branch `json:"head"`
	Base   *branch `json:"base"`
}

type branch struct {
	Ref string `json:"ref"`
}

// Normalize maps a raw webhook payload plus its X-GitHub-Event type into a
// canonical Event. The timestamp is always the supplied now (UTC), never a
// value from the payload.
//
// Unrecognized event types, and pull_request actions outside the handled set,
// come back with ActionUnknown and a nil error; callers drop those without
// persisting. ErrMalformedPayload is returned only for recognized event types
// whose payload cannot be used at all.
func Normalize(eventType string, payload []byte, now time.Time) (Event, error) {
	ev := Event{
		Action:    ActionUnknown,
		Timestamp: now.UTC().Format(time.RFC3339),
	}

	switch eventType {
	case "push", "pull_request":
	default:
		return ev, nil
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return ev, ErrMalformedPayload
	}

	if env.Repository != nil {
		ev.Repository = strings.TrimSpace(env.Repository.FullName)
	}

	switch eventType {
	case "push":
		ev.Action = ActionPush
		ev.RequestID = env.After
		ev.ToBranch = strings.TrimPrefix(env.Ref, branchRefPrefix)
		ev.Author = pushAuthor(env)

	case "pull_request":
		pr := env.PullRequest
		if pr == nil {
			return ev, ErrMalformedPayload
		}

		switch {
		case env.Action == "closed" && pr.Merged:
			ev.Action = ActionMerge
		case env.Action == "opened", env.Action == "reopened", env.Action == "synchronize":
			ev.Action = ActionPullRequest
		default:
			return ev, nil
		}

		if pr.ID != 0 {
			ev.RequestID = strconv.FormatInt(pr.ID, 10)
		}
		if pr.Head != nil {
			ev.FromBranch = pr.Head.Ref
		}
		if pr.Base != nil {
			ev.ToBranch = pr.Base.Ref
		}
		ev.Author = authorFallback
		if pr.User != nil && pr.User.Login != "" {
			ev.Author = pr.User.Login
		}
	}

	return ev, nil
}

// Push payloads name the actor in pusher.name; sender.login is the fallback.
func pushAuthor(env envelope) string {
	if env.Pusher != nil && env.Pusher.Name != "" {
		return env.Pusher.Name
	}
	if env.Sender != nil && env.Sender.Login != "" {
		return env.Sender.Login
	}
	return authorFallback
}
