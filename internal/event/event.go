package event

import "strings"

// Action classifies a normalized webhook notification. It is a closed set;
// anything the normalizer cannot map stays ActionUnknown and is never persisted.
type Action string

const (
	ActionPush        Action = "PUSH"
	ActionPullRequest Action = "PULL_REQUEST"
	ActionMerge       Action = "MERGE"
	ActionUnknown     Action = "UNKNOWN"
)

// Lower is the wire/template spelling of an action. Stored values stay uppercase.
func (a Action) Lower() string { return strings.ToLower(string(a)) }

// Event is the canonical record of one webhook notification.
//
// Timestamp is the server-assigned ingestion instant, RFC 3339 in UTC. It is
// stored as the encoded string; RFC 3339 UTC strings order lexicographically,
// which the retention purge and newest-first listing rely on.
type Event struct {
	ID         string `json:"id,omitempty"`
	RequestID  string `json:"request_id"`
	Author     string `json:"author"`
	Action     Action `json:"action"`
	FromBranch string `json:"from_branch"`
	ToBranch   string `json:"to_branch"`
	Repository string `json:"repository"`
	Timestamp  string `json:"timestamp"`
}
