package vault

import "context"

// Repository is the note store. Paths are vault-relative and use forward
// slashes; absolute paths inside the root are accepted too.
type Repository interface {
	Read(ctx context.Context, path string) (Note, error)
	// Write commits text if the file still holds note.Text. ErrConflict otherwise.
	Write(ctx context.Context, note Note, text string) error
	Resolve(path string) (string, error)
	IsDailyNote(path string) bool
	NoteDate(path string) (string, bool)
	DailyNotePath(date string) string
	// EnsureDailyNote creates the daily note for date when it does not exist.
	EnsureDailyNote(ctx context.Context, date string) (Note, bool, error)
}
