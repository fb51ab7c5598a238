package checklist

import (
	"regexp"
	"strings"
)

var (
	checkboxRe  = regexp.MustCompile(CheckboxPattern)
	openBoxRe   = regexp.MustCompile(`^(\s*)- \[ \]`)
	blockTailRe = regexp.MustCompile(`[ \t]+\^[A-Za-z0-9-]+[ \t]*$`)
)

// ParseCheckbox parses one line. ok is false for anything that is not a
// checklist item.
func ParseCheckbox(line string) (cb Checkbox, ok bool) {
	m := checkboxRe.FindStringSubmatch(line)
	if m == nil {
		return Checkbox{}, false
	}
	return Checkbox{
		Indent:  m[1],
		Checked: strings.EqualFold(m[2], "x"),
		Text:    m[3],
		RawLine: line,
	}, true
}

// ParseLines returns every checklist line in content with its line index.
// Lines inside fenced code blocks are ignored.
func ParseLines(content string) []Checkbox {
	lines := strings.Split(content, "\n")
	out := make([]Checkbox, 0)

	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		cb, ok := ParseCheckbox(strings.TrimRight(line, "\r"))
		if !ok {
			continue
		}
		cb.Line = i
		out = append(out, cb)
	}

	return out
}

// MarkDone flips an open checkbox to checked. Other lines are returned as is.
func MarkDone(line string) string {
	return openBoxRe.ReplaceAllString(line, "${1}"+CheckboxChecked)
}

func splitIndent(line string) (string, string) {
	body := strings.TrimLeft(line, " \t")
	return line[:len(line)-len(body)], body
}

// tail is what has to stay at the very end of a rewritten line: the "^id"
// block reference and the carriage return of a CRLF note.
type tail struct {
	block string
	cr    string
}

func splitTail(line string) (string, tail) {
	var t tail
	if strings.HasSuffix(line, "\r") {
		line = strings.TrimSuffix(line, "\r")
		t.cr = "\r"
	}
	if loc := blockTailRe.FindStringIndex(line); loc != nil {
		t.block = strings.TrimSpace(line[loc[0]:])
		line = line[:loc[0]]
	}
	return line, t
}

func (t tail) join(body string) string {
	if t.block != "" {
		body += " " + t.block
	}
	return body + t.cr
}
