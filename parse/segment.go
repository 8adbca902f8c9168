package parse

import "strings"

// SegmentType distinguishes prose from fenced code within a message.
type SegmentType string

const (
	SegmentMarkdown SegmentType = "markdown"
	SegmentCode     SegmentType = "code"
)

// Segment is one span of a message body. Sequence order is document order.
type Segment struct {
	Type     SegmentType `json:"type"`
	Content  string      `json:"content"`
	Language string      `json:"language,omitempty"`
}

// SplitSegments splits text into alternating markdown and fenced-code
// segments. Fence boundaries are exact and non-overlapping: a fence opens on
// a line starting with ``` (optionally followed by a language token) and
// closes on the next line that is exactly a fence. An unclosed fence yields
// a trailing code segment, which keeps mid-stream text well-formed.
func SplitSegments(text string) []Segment {
	if text == "" {
		return nil
	}

	var (
		segments []Segment
		buf      strings.Builder
		inCode   bool
		language string
	)

	flush := func(typ SegmentType, lang string) {
		content := buf.String()
		buf.Reset()
		if strings.TrimSpace(content) == "" {
			return
		}
		if typ == SegmentMarkdown {
			content = strings.TrimSpace(content)
		} else {
			content = strings.Trim(content, "\n")
		}
		segments = append(segments, Segment{Type: typ, Content: content, Language: lang})
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimRight(line, "\n")
		if strings.HasPrefix(trimmed, "```") {
			if inCode {
				flush(SegmentCode, language)
				inCode = false
				language = ""
			} else {
				flush(SegmentMarkdown, "")
				inCode = true
				language = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			}
			continue
		}
		buf.WriteString(line)
	}

	if inCode {
		flush(SegmentCode, language)
	} else {
		flush(SegmentMarkdown, "")
	}
	return segments
}
