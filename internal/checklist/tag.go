package checklist

import (
	"regexp"
	"strings"
)

// HasTag reports whether the line carries tag as a whole word.
func HasTag(line, tag string) bool {
	if tag == "" {
		return false
	}
	return tagPattern(`(?:^|\s)`, tag).MatchString(line)
}

// RemoveTag strips every whole-word occurrence of tag together with the
// whitespace in front of it. Tags glued to another token are left alone.
func RemoveTag(line, tag string) string {
	if tag == "" {
		return line
	}
	return tagPattern(`(?:^|[ \t]+)`, tag).ReplaceAllString(line, "")
}

// TagMatches compares a tag reported by an index (with or without '#')
// against the configured tag.
func TagMatches(candidate, tag string) bool {
	return strings.EqualFold(strings.TrimPrefix(candidate, "#"), strings.TrimPrefix(tag, "#"))
}

func tagPattern(prefix, tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + prefix + regexp.QuoteMeta(tag) + `\b`)
}
