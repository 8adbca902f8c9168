package parse

import (
	"regexp"
	"strings"
)

// Tool-protocol element names stripped from display text. The payload of
// these elements is wire protocol, not prose, so the whole element goes.
var toolTagNames = []string{
	"tool_call",
	"tool_response",
	"function_call",
	"function_response",
	"tool_use",
	"tool_result",
}

var (
	toolElementRe  = regexp.MustCompile(`(?s)<(` + strings.Join(toolTagNames, "|") + `)\b[^>]*>.*?</(?:` + strings.Join(toolTagNames, "|") + `)\s*>`)
	toolDanglingRe = regexp.MustCompile(`</?(?:` + strings.Join(toolTagNames, "|") + `)\b[^>]*>`)
	boxTagRe       = regexp.MustCompile(`</?box\b[^>]*>`)
)

// StripToolTags removes tool-protocol XML elements, payload included, from
// text. Unmatched open or close tags are removed on their own so a partially
// streamed element never leaks markup. Idempotent and total.
func StripToolTags(text string) string {
	if text == "" {
		return ""
	}
	out := toolElementRe.ReplaceAllString(text, "")
	return toolDanglingRe.ReplaceAllString(out, "")
}

// StripBoxTags removes the <box> annotation wrapper tags while keeping the
// wrapped content, which is real prose. Idempotent and total.
func StripBoxTags(text string) string {
	if text == "" {
		return ""
	}
	return boxTagRe.ReplaceAllString(text, "")
}

// StripTags applies both strip filters in their required order: tool-protocol
// elements first, then box wrappers. The box strip never resurrects markup
// the tool strip removed.
func StripTags(text string) string {
	return StripBoxTags(StripToolTags(text))
}
