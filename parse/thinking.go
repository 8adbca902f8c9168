package parse

import "strings"

// Reasoning sentinel tags. Local reasoning models (DeepSeek-R1, Qwen) emit
// their deliberation between these literal markers. They are matched as
// plain strings, never as nested structure.
const (
	thinkOpenTag  = "<think>"
	thinkCloseTag = "</think>"
)

// ThinkingResult splits a message into its reasoning trace and the
// user-facing answer.
type ThinkingResult struct {
	// ThinkingContent is the reasoning trace, empty when the message has none.
	ThinkingContent string

	// MainContent is the user-facing text with the reasoning removed. It
	// never contains a sentinel tag.
	MainContent string

	// ThinkingComplete is false only while a reasoning block has been opened
	// but not yet closed (mid-stream).
	ThinkingComplete bool
}

// ThinkingBlock is one reasoning block found by ExtractThinkingBlocks.
type ThinkingBlock struct {
	Content  string
	Complete bool
}

// ExtractThinking extracts the first reasoning block from text.
//
// With no open sentinel the input passes through untouched. With a matched
// pair, the enclosed text becomes the trace and the surrounding text (before
// and after, concatenated) becomes the answer. With an unmatched open
// sentinel the rest of the text is treated as a still-streaming trace.
func ExtractThinking(text string) ThinkingResult {
	start := strings.Index(text, thinkOpenTag)
	if start < 0 {
		return ThinkingResult{MainContent: text, ThinkingComplete: true}
	}

	afterOpen := start + len(thinkOpenTag)
	end := strings.Index(text[afterOpen:], thinkCloseTag)
	if end < 0 {
		// Still streaming: everything after the open tag is the trace so far.
		return ThinkingResult{
			ThinkingContent:  strings.TrimSpace(text[afterOpen:]),
			MainContent:      strings.TrimSpace(text[:start]),
			ThinkingComplete: false,
		}
	}

	closeAt := afterOpen + end
	return ThinkingResult{
		ThinkingContent:  strings.TrimSpace(text[afterOpen:closeAt]),
		MainContent:      strings.TrimSpace(text[:start] + text[closeAt+len(thinkCloseTag):]),
		ThinkingComplete: true,
	}
}

// ExtractThinkingBlocks enumerates every reasoning block in text in document
// order, each with its own completeness flag. Only the final block can be
// incomplete.
func ExtractThinkingBlocks(text string) []ThinkingBlock {
	var blocks []ThinkingBlock
	rest := text
	for {
		start := strings.Index(rest, thinkOpenTag)
		if start < 0 {
			return blocks
		}
		rest = rest[start+len(thinkOpenTag):]

		end := strings.Index(rest, thinkCloseTag)
		if end < 0 {
			blocks = append(blocks, ThinkingBlock{
				Content:  strings.TrimSpace(rest),
				Complete: false,
			})
			return blocks
		}
		blocks = append(blocks, ThinkingBlock{
			Content:  strings.TrimSpace(rest[:end]),
			Complete: true,
		})
		rest = rest[end+len(thinkCloseTag):]
	}
}
