package extractor

import "errors"

var (
	// ErrNoUsefulResult means the strategy ran but has nothing to offer for this note.
	ErrNoUsefulResult = errors.New("strategy produced no usable tasks")
	// ErrStaleIndex means the index disagrees with the text being reconciled.
	ErrStaleIndex = errors.New("task index is out of date with the note")
)
