package checklist

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	fieldCache sync.Map // name → *fieldPatterns

	legacyRe      = regexp.MustCompile(`\{([\w-]+)\s*:\s*([^}]+?)\s*\}`)
	anyFieldRe    = regexp.MustCompile(`\[[\w-]+::[^\]]*\]`)
	anyLegacyRe   = regexp.MustCompile(`\{[\w-]+\s*:[^}]*\}`)
	trailingSpace = regexp.MustCompile(`[ \t]+$`)
)

type fieldPatterns struct {
	value  *regexp.Regexp
	remove *regexp.Regexp
}

func patternsFor(name string) *fieldPatterns {
	if p, ok := fieldCache.Load(name); ok {
		return p.(*fieldPatterns)
	}
	q := regexp.QuoteMeta(name)
	p := &fieldPatterns{
		value:  regexp.MustCompile(`(?i)\[` + q + `::\s*([^\]]*?)\s*\]`),
		remove: regexp.MustCompile(`(?i)[ \t]*\[` + q + `::[^\]]*\]`),
	}
	actual, _ := fieldCache.LoadOrStore(name, p)
	return actual.(*fieldPatterns)
}

// InlineField returns the value of [name::value]. Names match case-insensitively
// and an empty value counts as absent.
func InlineField(line, name string) (string, bool) {
	m := patternsFor(name).value.FindStringSubmatch(line)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// RemoveInlineField drops every [name::…] occurrence.
func RemoveInlineField(line, name string) string {
	return trailingSpace.ReplaceAllString(patternsFor(name).remove.ReplaceAllString(line, ""), "")
}

// SetInlineField writes [name::value]. A single existing occurrence is
// rewritten in place so field order stays stable across runs; otherwise the
// field is appended in front of any trailing block reference.
func SetInlineField(line, name, value string) string {
	p := patternsFor(name)
	field := "[" + name + "::" + value + "]"

	if locs := p.value.FindAllStringIndex(line, -1); len(locs) == 1 {
		return line[:locs[0][0]] + field + line[locs[0][1]:]
	}

	body, t := splitTail(line)
	return t.join(RemoveInlineField(body, name) + " " + field)
}

// InlineBool parses [name::true|false].
func InlineBool(line, name string) (value bool, ok bool) {
	raw, found := InlineField(line, name)
	if !found {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// InlineMinutes parses a positive integer field such as [duration::45].
func InlineMinutes(line, name string) int {
	raw, ok := InlineField(line, name)
	if !ok {
		return 0
	}
	return positiveInt(raw)
}

// ParseLegacyMeta reads {key:value} pairs. Keys are lower-cased; the first
// occurrence of a key wins.
func ParseLegacyMeta(line string) LegacyMeta {
	meta := LegacyMeta{}
	for _, m := range legacyRe.FindAllStringSubmatch(line, -1) {
		key := strings.ToLower(m[1])
		if _, seen := meta[key]; !seen {
			meta[key] = m[2]
		}
	}
	return meta
}

// Bool returns the boolean value of key, if present and well formed.
func (m LegacyMeta) Bool(key string) (value bool, ok bool) {
	switch strings.ToLower(m[key]) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// Minutes returns the positive integer value of key or 0.
func (m LegacyMeta) Minutes(key string) int {
	return positiveInt(m[key])
}

// RemoveLegacyMeta drops the {key:…} pairs for the given keys.
func RemoveLegacyMeta(line string, keys ...string) string {
	for _, key := range keys {
		re := regexp.MustCompile(`(?i)[ \t]*\{` + regexp.QuoteMeta(key) + `\s*:[^}]*\}`)
		line = re.ReplaceAllString(line, "")
	}
	return trailingSpace.ReplaceAllString(line, "")
}

func positiveInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
