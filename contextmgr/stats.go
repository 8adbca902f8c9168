package contextmgr

import (
	"encoding/json"

	"github.com/hearthchat/hearth/types"
)

// UtilizationLevel classifies how full the context window is.
type UtilizationLevel string

const (
	UtilizationLow      UtilizationLevel = "low"
	UtilizationMedium   UtilizationLevel = "medium"
	UtilizationHigh     UtilizationLevel = "high"
	UtilizationCritical UtilizationLevel = "critical"
)

// ContextStats reports the current token accounting for a conversation.
type ContextStats struct {
	// CurrentTokens is the estimated total: system prompt + tools + conversation.
	CurrentTokens int `json:"current_tokens"`

	// MaxContext is the model's maximum context size in tokens.
	MaxContext int `json:"max_context"`

	// Utilization is CurrentTokens / MaxContext (0 when MaxContext is 0).
	Utilization float64 `json:"utilization"`

	// SystemPromptTokens is the estimated cost of the system prompt.
	SystemPromptTokens int `json:"system_prompt_tokens"`

	// ToolTokens is the estimated cost of the serialized tool schema.
	ToolTokens int `json:"tool_tokens"`

	// ConversationTokens is the estimated cost of the message list.
	ConversationTokens int `json:"conversation_tokens"`

	// Headroom is max(0, MaxContext - CurrentTokens).
	Headroom int `json:"headroom"`

	// EstimatedMessagesUntilLimit is how many more average-cost messages fit
	// in the headroom.
	EstimatedMessagesUntilLimit int `json:"estimated_messages_until_limit"`
}

// Stats computes token subtotals for the system prompt, serialized tool
// schema, and conversation, and derives utilization and headroom. Every
// count uses the manager's single estimator, so values are comparable
// across calls.
func (m *Manager) Stats(messages []types.Message, maxContext int, systemPrompt string, tools []types.ToolDefinition) ContextStats {
	stats := ContextStats{
		MaxContext:         maxContext,
		SystemPromptTokens: m.EstimateTokens(systemPrompt),
		ConversationTokens: m.MessageTokens(messages),
	}

	if len(tools) > 0 {
		if serialized, err := json.Marshal(tools); err == nil {
			stats.ToolTokens = m.EstimateTokens(string(serialized))
		}
	}

	stats.CurrentTokens = stats.SystemPromptTokens + stats.ToolTokens + stats.ConversationTokens
	if maxContext > 0 {
		stats.Utilization = float64(stats.CurrentTokens) / float64(maxContext)
	}
	stats.Headroom = maxContext - stats.CurrentTokens
	if stats.Headroom < 0 {
		stats.Headroom = 0
	}

	avg := m.config.DefaultMessageTokens
	if len(messages) > 0 {
		avg = stats.ConversationTokens / len(messages)
	}
	if avg > 0 {
		stats.EstimatedMessagesUntilLimit = stats.Headroom / avg
	}

	return stats
}

// UtilizationLevel classifies a utilization ratio with fixed thresholds:
// below 0.5 low, below 0.75 medium, below 0.9 high, critical otherwise.
func (m *Manager) UtilizationLevel(utilization float64) UtilizationLevel {
	switch {
	case utilization < 0.5:
		return UtilizationLow
	case utilization < 0.75:
		return UtilizationMedium
	case utilization < 0.9:
		return UtilizationHigh
	default:
		return UtilizationCritical
	}
}
