package audit

import "time"

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

// Mutation is a remote write recorded for a run.
type Mutation struct {
	Kind    string `json:"kind"`
	EventID string `json:"event_id"`
	TaskID  string `json:"task_id,omitempty"`
	Title   string `json:"title,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Run is the audit entry of one sync.
type Run struct {
	ID              string
	Path            string
	ContextDate     string
	Strategy        string
	Trigger         string // api, cli, schedule, watch
	Changed         bool
	DocumentChanged bool
	AuthFailed      bool
	EditCount       int
	Mutations       []Mutation
	Notices         []string
	Error           string
	CreatedAt       time.Time
}

// ListOptions filters List. Limit is clamped to [1, MaxListLimit].
type ListOptions struct {
	Path  string
	Limit int
}

// ClampLimit applies the list limit rules.
func (o ListOptions) ClampLimit() int {
	switch {
	case o.Limit <= 0:
		return DefaultListLimit
	case o.Limit > MaxListLimit:
		return MaxListLimit
	}
	return o.Limit
}
