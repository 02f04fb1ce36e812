package bus

// SubjectEventStored carries a notification for every event that made it
// into the store. Published best-effort after the insert commits; consumers
// must not assume exactly-once delivery.
const SubjectEventStored = "hookwatch.event.stored"

type EventStored struct {
	ID         string `json:"id"`
	RequestID  string `json:"request_id,omitempty"`
	Author     string `json:"author"`
	Action     string `json:"action"`
	FromBranch string `json:"from_branch,omitempty"`
	ToBranch   string `json:"to_branch,omitempty"`
	Repository string `json:"repository,omitempty"`
	Timestamp  string `json:"timestamp"`
}
