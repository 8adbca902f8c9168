package hooks

import (
	"log"

	"github.com/hearthchat/hearth/contextmgr"
	"github.com/hearthchat/hearth/parse"
)

// LoggingHooks provides built-in logging hooks for observability
type LoggingHooks struct {
	logger *log.Logger
}

// NewLoggingHooks creates logging hooks with the provided logger
func NewLoggingHooks(logger *log.Logger) *LoggingHooks {
	return &LoggingHooks{logger: logger}
}

// DefaultLoggingHooks creates logging hooks with default logger
func DefaultLoggingHooks() *LoggingHooks {
	return &LoggingHooks{logger: log.Default()}
}

// AfterParse logs a one-line summary of a parsed message
func (h *LoggingHooks) AfterParse(result *parse.ParsedMessage) {
	h.logger.Printf("[Hearth] Parsed message %s: %d artifacts, %d segments, thinking_complete=%t",
		result.Hash, len(result.Artifacts), len(result.Segments), result.Thinking.ThinkingComplete)
}

// BeforeCompaction logs the utilization that motivated compaction
func (h *LoggingHooks) BeforeCompaction(stats contextmgr.ContextStats) {
	h.logger.Printf("[Hearth] Starting compaction at %.0f%% utilization (%s / %s tokens)",
		stats.Utilization*100,
		contextmgr.FormatTokenCount(stats.CurrentTokens),
		contextmgr.FormatTokenCount(stats.MaxContext))
}

// AfterCompaction logs the compaction outcome
func (h *LoggingHooks) AfterCompaction(event *contextmgr.Event) {
	reduction := float64(0)
	if event.TokensBefore > 0 {
		reduction = float64(event.TokensBefore-event.TokensAfter) / float64(event.TokensBefore) * 100
	}

	h.logger.Printf("[Hearth] Compaction complete: %d → %d tokens (%.1f%% reduction, %d messages removed, strategy: %s)",
		event.TokensBefore, event.TokensAfter, reduction, event.MessagesRemoved, event.Strategy)
}

// VerboseLoggingHooks provides detailed logging for debugging
type VerboseLoggingHooks struct {
	logger *log.Logger
}

// NewVerboseLoggingHooks creates verbose logging hooks
func NewVerboseLoggingHooks(logger *log.Logger) *VerboseLoggingHooks {
	return &VerboseLoggingHooks{logger: logger}
}

// AfterParse logs detailed parse information
func (h *VerboseLoggingHooks) AfterParse(result *parse.ParsedMessage) {
	h.logger.Printf("[Hearth][VERBOSE] === Parsed message %s ===", result.Hash)
	h.logger.Printf("[Hearth][VERBOSE] Streaming: %t", result.IsStreaming)
	for i, a := range result.Artifacts {
		h.logger.Printf("[Hearth][VERBOSE] Artifact %d: type=%s title=%q (%d bytes)",
			i, a.Type, a.Title, len(a.Code))
	}
	for i, seg := range result.Segments {
		h.logger.Printf("[Hearth][VERBOSE] Segment %d: type=%s lang=%q (%d bytes)",
			i, seg.Type, seg.Language, len(seg.Content))
	}
}

// BeforeCompaction logs the full stats breakdown
func (h *VerboseLoggingHooks) BeforeCompaction(stats contextmgr.ContextStats) {
	h.logger.Printf("[Hearth][VERBOSE] === Starting Compaction ===")
	h.logger.Printf("[Hearth][VERBOSE] System prompt tokens: %d", stats.SystemPromptTokens)
	h.logger.Printf("[Hearth][VERBOSE] Tool tokens: %d", stats.ToolTokens)
	h.logger.Printf("[Hearth][VERBOSE] Conversation tokens: %d", stats.ConversationTokens)
	h.logger.Printf("[Hearth][VERBOSE] Headroom: %d", stats.Headroom)
}

// AfterCompaction logs detailed compaction results
func (h *VerboseLoggingHooks) AfterCompaction(event *contextmgr.Event) {
	h.logger.Printf("[Hearth][VERBOSE] === Compaction Complete ===")
	h.logger.Printf("[Hearth][VERBOSE] Strategy: %s", event.Strategy)
	h.logger.Printf("[Hearth][VERBOSE] Tokens before: %d", event.TokensBefore)
	h.logger.Printf("[Hearth][VERBOSE] Tokens after: %d", event.TokensAfter)
	h.logger.Printf("[Hearth][VERBOSE] Messages removed: %d", event.MessagesRemoved)
	if event.Summary != "" {
		h.logger.Printf("[Hearth][VERBOSE] Summary length: %d bytes", len(event.Summary))
	}
}

// MetricsHooks collects metrics for monitoring
type MetricsHooks struct {
	OnMetric func(name string, value float64, tags map[string]string)
}

// NewMetricsHooks creates metrics collection hooks
func NewMetricsHooks(onMetric func(string, float64, map[string]string)) *MetricsHooks {
	return &MetricsHooks{OnMetric: onMetric}
}

// AfterParse records parse metrics
func (h *MetricsHooks) AfterParse(result *parse.ParsedMessage) {
	h.OnMetric("hearth.parse.artifacts", float64(len(result.Artifacts)), nil)
	h.OnMetric("hearth.parse.segments", float64(len(result.Segments)), nil)
}

// BeforeCompaction records the utilization that triggered compaction
func (h *MetricsHooks) BeforeCompaction(stats contextmgr.ContextStats) {
	h.OnMetric("hearth.context.utilization", stats.Utilization, nil)
}

// AfterCompaction records compaction metrics
func (h *MetricsHooks) AfterCompaction(event *contextmgr.Event) {
	tags := map[string]string{"strategy": string(event.Strategy)}

	h.OnMetric("hearth.compaction.tokens_before", float64(event.TokensBefore), tags)
	h.OnMetric("hearth.compaction.tokens_after", float64(event.TokensAfter), tags)
	h.OnMetric("hearth.compaction.messages_removed", float64(event.MessagesRemoved), tags)
}
