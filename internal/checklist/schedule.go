package checklist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emojiDateRe = regexp.MustCompile(`📅\s*(\d{4}-\d{2}-\d{2})`)
	bareDateRe  = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	emojiTimeRe = regexp.MustCompile(`⏰\s*(\d{1,2}:\d{2})\b`)
	bareTimeRe  = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)

	dateMarkerRe = regexp.MustCompile(`\s*📅\s*\d{4}-\d{2}-\d{2}\s*`)
	timeMarkerRe = regexp.MustCompile(`\s*⏰\s*\d{1,2}:\d{2}\s*`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// ScanDate finds the task date in text. An emoji marked date wins over a bare
// one. Invalid calendar dates are ignored.
func ScanDate(text string) string {
	text = stripFields(text)
	for _, re := range []*regexp.Regexp{emojiDateRe, bareDateRe} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if ValidDate(m[1]) {
				return m[1]
			}
		}
	}
	return ""
}

// ScanTime finds the task time in text and normalizes it to HH:MM.
func ScanTime(text string) string {
	text = stripFields(text)
	for _, re := range []*regexp.Regexp{emojiTimeRe, bareTimeRe} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if clock, ok := NormalizeClock(m[1]); ok {
				return clock
			}
		}
	}
	return ""
}

// ValidDate reports whether s is a real YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// NormalizeClock validates H:MM / HH:MM and returns the zero padded form.
func NormalizeClock(s string) (string, bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return "", false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 || len(m) != 2 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// Reformat moves the schedule markers of a task line to the end, time first:
// "… ⏰ 14:00 📅 2024-07-15". Bare tokens equal to the given date or time are
// absorbed into the markers. A trailing block reference and the line ending
// are kept last. Applying it twice gives the same line.
func Reformat(line, date, clock string) string {
	line, t := splitTail(line)
	indent, body := splitIndent(line)

	body = dateMarkerRe.ReplaceAllString(body, " ")
	body = timeMarkerRe.ReplaceAllString(body, " ")
	if date != "" {
		body = bareDateRe.ReplaceAllStringFunc(body, func(tok string) string {
			if tok == date {
				return " "
			}
			return tok
		})
	}
	if clock != "" {
		body = bareTimeRe.ReplaceAllStringFunc(body, func(tok string) string {
			if norm, ok := NormalizeClock(tok); ok && norm == clock {
				return " "
			}
			return tok
		})
	}

	body = strings.TrimSpace(multiSpaceRe.ReplaceAllString(body, " "))
	if clock != "" {
		body += " " + TimeMarker + " " + clock
	}
	if date != "" {
		body += " " + DateMarker + " " + date
	}
	return t.join(indent + body)
}

func stripFields(text string) string {
	text = anyFieldRe.ReplaceAllString(text, " ")
	return anyLegacyRe.ReplaceAllString(text, " ")
}
