package sync

import "plansync/internal/reconcile"

// Trigger says what started a run.
type Trigger string

const (
	TriggerAPI      Trigger = "api"
	TriggerCLI      Trigger = "cli"
	TriggerSchedule Trigger = "schedule"
	TriggerWatch    Trigger = "watch"
)

const (
	NoticeNoteUpdated = "Note was updated."
	NoticeNoChanges   = "Synchronization complete. No changes made."
)

type SyncInput struct {
	Path    string
	Trigger Trigger
}

type SyncOutput struct {
	RunID           string
	Path            string
	ContextDate     string
	Strategy        string
	Notices         []string
	Edits           []reconcile.LineEdit
	Mutations       []reconcile.Mutation
	DocumentChanged bool
	Changed         bool
	AuthFailed      bool
}

type ListRunsInput struct {
	Path  string
	Limit int
}
