package contextmgr

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/hearthchat/hearth/types"
)

// Strategy selects how compaction shrinks the conversation. Selection is
// caller-driven; the manager never picks a strategy on its own.
type Strategy string

const (
	// StrategySlidingWindow keeps the preserved recent tail plus as many
	// older messages, newest first, as fit under the token target.
	StrategySlidingWindow Strategy = "sliding_window"

	// StrategyTruncate drops the oldest messages until the total fits the
	// token target, never dropping into the preserved tail.
	StrategyTruncate Strategy = "truncate"

	// StrategySummarize replaces all older messages with one synthetic
	// system message carrying a truncated transcript.
	StrategySummarize Strategy = "summarize"
)

// summaryBanner prefixes the synthetic transcript message produced by
// summarize compaction.
const summaryBanner = "[Conversation compacted — earlier messages summarized below]"

// Event is the append-only audit record of one compaction run. The core
// hands it to the caller for storage or display and keeps no history itself.
type Event struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	Strategy          Strategy  `json:"strategy"`
	TokensBefore      int       `json:"tokens_before"`
	TokensAfter       int       `json:"tokens_after"`
	MessagesRemoved   int       `json:"messages_removed"`
	MessagesKept      int       `json:"messages_kept"`
	MaxContext        int       `json:"max_context"`
	UtilizationBefore float64   `json:"utilization_before"`
	UtilizationAfter  float64   `json:"utilization_after"`
	Summary           string    `json:"summary,omitempty"`
}

// Compact shrinks messages to fit the token target derived from maxContext
// and the configured TargetAfterCompaction fraction, using the given
// strategy. The input slice is never mutated; compaction is all-or-nothing
// per invocation. No strategy removes more than
// len(messages) - PreserveRecentMessages messages, except summarize, which
// replaces the removed messages with exactly one synthetic system message.
func (m *Manager) Compact(messages []types.Message, maxContext int, strategy Strategy) ([]types.Message, *Event, error) {
	if strategy == "" {
		strategy = StrategySlidingWindow
	}

	tokensBefore := m.MessageTokens(messages)
	target := int(float64(maxContext) * m.config.TargetAfterCompaction)

	var (
		kept    []types.Message
		summary string
	)
	switch strategy {
	case StrategySlidingWindow:
		kept = m.slidingWindow(messages, target)
	case StrategyTruncate:
		kept = m.truncate(messages, target)
	case StrategySummarize:
		kept, summary = m.summarize(messages)
	default:
		return nil, nil, NewError("Compact", fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy))
	}

	tokensAfter := m.MessageTokens(kept)
	event := &Event{
		ID:              uuid.New().String(),
		Timestamp:       time.Now(),
		Strategy:        strategy,
		TokensBefore:    tokensBefore,
		TokensAfter:     tokensAfter,
		MessagesRemoved: len(messages) - len(kept),
		MessagesKept:    len(kept),
		MaxContext:      maxContext,
		Summary:         summary,
	}
	if strategy == StrategySummarize && summary != "" {
		// The synthetic message is an addition, not a survivor.
		event.MessagesRemoved = len(messages) - (len(kept) - 1)
	}
	if maxContext > 0 {
		event.UtilizationBefore = float64(tokensBefore) / float64(maxContext)
		event.UtilizationAfter = float64(tokensAfter) / float64(maxContext)
	}
	return kept, event, nil
}

// preserveSplit returns the index where the preserved recent tail begins.
// Synthetic summary messages do not count toward the preserved quota, so
// repeated compaction cannot nest summaries inside the tail.
func (m *Manager) preserveSplit(messages []types.Message) int {
	remaining := m.config.PreserveRecentMessages
	if remaining <= 0 {
		return len(messages)
	}
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].IsSummary {
			continue
		}
		remaining--
		if remaining == 0 {
			return i
		}
	}
	return 0
}

// slidingWindow keeps the preserved tail verbatim, then walks the older
// messages newest first, keeping each one only while the running total stays
// at or under the target. The first message that would exceed the target
// stops the walk; result ordering is preserved.
func (m *Manager) slidingWindow(messages []types.Message, target int) []types.Message {
	split := m.preserveSplit(messages)
	tail := messages[split:]
	running := m.MessageTokens(tail)

	keepFrom := split
	for i := split - 1; i >= 0; i-- {
		cost := m.EstimateTokens(messages[i].Content) + m.config.MessageOverheadTokens
		if running+cost > target {
			break
		}
		running += cost
		keepFrom = i
	}

	kept := make([]types.Message, len(messages)-keepFrom)
	copy(kept, messages[keepFrom:])
	return kept
}

// truncate advances a start index past the oldest messages while the total
// exceeds the target, never advancing into the preserved tail.
func (m *Manager) truncate(messages []types.Message, target int) []types.Message {
	split := m.preserveSplit(messages)
	total := m.MessageTokens(messages)

	start := 0
	for start < split && total > target {
		total -= m.EstimateTokens(messages[start].Content) + m.config.MessageOverheadTokens
		start++
	}

	kept := make([]types.Message, len(messages)-start)
	copy(kept, messages[start:])
	return kept
}

// summarize replaces everything before the preserved tail with one synthetic
// system message holding a banner plus a per-message-truncated transcript.
// With no older messages it is a no-op.
func (m *Manager) summarize(messages []types.Message) ([]types.Message, string) {
	split := m.preserveSplit(messages)
	if split == 0 {
		kept := make([]types.Message, len(messages))
		copy(kept, messages)
		return kept, ""
	}

	var transcript strings.Builder
	transcript.WriteString(summaryBanner)
	transcript.WriteString("\n\n")
	for i, msg := range messages[:split] {
		if i > 0 {
			transcript.WriteString("\n")
		}
		transcript.WriteString(string(msg.Role))
		transcript.WriteString(": ")
		transcript.WriteString(truncateLine(msg.Content, SummaryLineLimit))
	}
	summary := transcript.String()

	kept := make([]types.Message, 0, len(messages)-split+1)
	kept = append(kept, types.Message{
		Role:      types.RoleSystem,
		Content:   summary,
		IsSummary: true,
	})
	kept = append(kept, messages[split:]...)
	return kept, summary
}

// truncateLine caps s at limit bytes, appending an ellipsis when it was cut.
// The cut backs up to a rune boundary so the result stays valid UTF-8.
func truncateLine(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
