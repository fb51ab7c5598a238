package reconcile

// Config carries the sync settings the engine needs.
type Config struct {
	CalendarID       string   // target of every write
	ReadCalendarIDs  []string // calendars consulted when fetching; defaults to CalendarID
	DefaultDuration  int      // minutes
	DefaultStartHour int
	SyncTag          string
}

func (c Config) withDefaults() Config {
	if c.CalendarID == "" {
		c.CalendarID = "primary"
	}
	if len(c.ReadCalendarIDs) == 0 {
		c.ReadCalendarIDs = []string{c.CalendarID}
	}
	if c.DefaultDuration <= 0 {
		c.DefaultDuration = 60
	}
	return c
}

// Input is the note being synchronized.
type Input struct {
	Path        string
	Text        string
	ContextDate string // YYYY-MM-DD; the daily note's date or today
	DateBound   bool   // true when the note itself is named after ContextDate
}

// LineEdit replaces one line of the original text.
type LineEdit struct {
	Line   int    `json:"line" yaml:"line"`
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

// MutationKind names a remote write.
type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
)

// Mutation is a remote write that succeeded during the run.
type Mutation struct {
	Kind    MutationKind `json:"kind" yaml:"kind"`
	EventID string       `json:"event_id" yaml:"event_id"`
	TaskID  string       `json:"task_id,omitempty" yaml:"task_id,omitempty"`
	Title   string       `json:"title,omitempty" yaml:"title,omitempty"`
	Reason  string       `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Outcome is the result of one run. Text is the patched note; it equals the
// input text when DocumentChanged is false.
type Outcome struct {
	Text            string     `json:"-" yaml:"-"`
	Edits           []LineEdit `json:"edits" yaml:"edits"`
	Mutations       []Mutation `json:"mutations" yaml:"mutations"`
	Notices         []string   `json:"notices" yaml:"notices"`
	DocumentChanged bool       `json:"document_changed" yaml:"document_changed"`
	Changed         bool       `json:"changed" yaml:"changed"`
	AuthFailed      bool       `json:"auth_failed" yaml:"auth_failed"`
}
