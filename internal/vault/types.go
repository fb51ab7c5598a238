package vault

import "time"

const noteExt = ".md"

// Note is a note as read from disk.
type Note struct {
	Path    string
	Text    string
	ModTime time.Time
}

// Op is a watched file operation.
type Op int

const (
	OpCreate Op = iota
	OpModify
	OpDelete
)

func (op Op) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change is a note that changed on disk.
type Change struct {
	Path string // vault-relative
	Op   Op
}
