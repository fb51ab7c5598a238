package gateway

import (
	"fmt"
	"regexp"
)

// TaskIDMarker precedes the external task id in an event description. Events
// created by earlier versions carry the same marker.
const TaskIDMarker = "Obsidian Task ID:"

var (
	markerRe = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(TaskIDMarker) + `\s*([a-f0-9-]+)`)
	pathRe   = regexp.MustCompile(`(?m)^Path:[ \t]*(.+?)[ \t]*$`)
)

// LinkedTaskID extracts the back-reference from a description.
func LinkedTaskID(description string) string {
	m := markerRe.FindStringSubmatch(description)
	if m == nil {
		return ""
	}
	return m[1]
}

// LinkedPath returns the note path recorded in a description, or "" for
// descriptions written before the path line existed.
func LinkedPath(description string) string {
	m := pathRe.FindStringSubmatch(description)
	if m == nil {
		return ""
	}
	return m[1]
}

// Description builds the event body with the back-reference.
func Description(externalTaskID, path string) string {
	return fmt.Sprintf("Synced from notes.\n%s %s\nPath: %s", TaskIDMarker, externalTaskID, path)
}
