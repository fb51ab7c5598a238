package checklist

import (
	"regexp"
	"strings"
)

var (
	uuidRe       = regexp.MustCompile(`(?i)\b[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\b`)
	idWordRe     = regexp.MustCompile(`(?i)\b(obsidianTaskId|gcalEventId)\b`)
	taskEmojiRe  = regexp.MustCompile(`[📅⏰⏳🛫✅➕]`)
	emojiDate2Re = regexp.MustCompile(`📅\s*\d{4}-\d{2}-\d{2}`)
	emojiTime2Re = regexp.MustCompile(`⏰\s*\d{1,2}:\d{2}\b`)
	blockLinkRe  = regexp.MustCompile(`(?:^|\s)\^([A-Za-z0-9-]+)\s*$`)
	blockRefRe   = regexp.MustCompile(`(?:^|\s)\^[A-Za-z0-9-]+(?:\s|$)`)
)

// BlockLink returns the trailing "^id" block reference of a task, if any.
func BlockLink(text string) string {
	m := blockLinkRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// CleanContent turns task text into an event title: inline fields, legacy
// braces, schedule tokens, the given tags, id-like leftovers and task emojis
// are dropped and whitespace is collapsed.
func CleanContent(text string, tags ...string) string {
	text = blockRefRe.ReplaceAllString(text, " ")
	text = anyFieldRe.ReplaceAllString(text, " ")
	text = anyLegacyRe.ReplaceAllString(text, " ")

	text = emojiDate2Re.ReplaceAllString(text, " ")
	text = emojiTime2Re.ReplaceAllString(text, " ")
	text = bareDateRe.ReplaceAllStringFunc(text, dropIfValidDate)
	text = bareTimeRe.ReplaceAllStringFunc(text, dropIfValidClock)

	for _, tag := range tags {
		text = RemoveTag(text, tag)
	}

	text = uuidRe.ReplaceAllString(text, " ")
	text = idWordRe.ReplaceAllString(text, " ")
	text = taskEmojiRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(text, " "))
}

func dropIfValidDate(tok string) string {
	if ValidDate(tok) {
		return " "
	}
	return tok
}

func dropIfValidClock(tok string) string {
	if _, ok := NormalizeClock(tok); ok {
		return " "
	}
	return tok
}
