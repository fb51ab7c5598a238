package checklist

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Captures indent, checkbox state and text.
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `^(\s*)- \[([ xX])\] (.*)$`

	FieldTaskID   = "obsidianTaskId"
	FieldEventID  = "gcalEventId"
	FieldSync     = "sync"
	FieldDuration = "duration"

	LegacyTaskID   = "taskid"
	LegacyEventID  = "eventid"
	LegacySync     = "sync"
	LegacyDuration = "duration"

	DateMarker = "📅"
	TimeMarker = "⏰"
)

// Checkbox is a single checklist line of a note.
type Checkbox struct {
	Line    int    // 0-based line index in the note
	Indent  string // leading whitespace
	Checked bool   // true for [x] or [X]
	Text    string // text after the checkbox
	RawLine string
}

// LegacyMeta holds {key:value} pairs written by older versions.
type LegacyMeta map[string]string
