package contextmgr

import (
	"testing"

	"github.com/hearthchat/hearth/types"
)

func TestStats(t *testing.T) {
	m := DefaultManager()
	messages := []types.Message{
		{Role: types.RoleUser, Content: "12345678"},      // 2 + 4
		{Role: types.RoleAssistant, Content: "12345678"}, // 2 + 4
	}

	stats := m.Stats(messages, 1000, "12345678", nil)

	if stats.SystemPromptTokens != 2 {
		t.Errorf("SystemPromptTokens = %d, want 2", stats.SystemPromptTokens)
	}
	if stats.ConversationTokens != 12 {
		t.Errorf("ConversationTokens = %d, want 12", stats.ConversationTokens)
	}
	if stats.ToolTokens != 0 {
		t.Errorf("ToolTokens = %d, want 0", stats.ToolTokens)
	}
	if stats.CurrentTokens != 14 {
		t.Errorf("CurrentTokens = %d, want 14", stats.CurrentTokens)
	}
	if stats.Utilization != 0.014 {
		t.Errorf("Utilization = %f, want 0.014", stats.Utilization)
	}
	if stats.Headroom != 986 {
		t.Errorf("Headroom = %d, want 986", stats.Headroom)
	}
	// Average message cost is 6 tokens; 986 / 6 = 164.
	if stats.EstimatedMessagesUntilLimit != 164 {
		t.Errorf("EstimatedMessagesUntilLimit = %d, want 164", stats.EstimatedMessagesUntilLimit)
	}
}

func TestStatsToolSchemaCounted(t *testing.T) {
	m := DefaultManager()
	tools := []types.ToolDefinition{
		{
			Name:        "search",
			Description: "look things up",
			Parameters:  map[string]any{"type": "object"},
		},
	}

	stats := m.Stats(nil, 1000, "", tools)
	if stats.ToolTokens == 0 {
		t.Error("ToolTokens = 0 with a tool schema present")
	}
	if stats.CurrentTokens != stats.ToolTokens {
		t.Errorf("CurrentTokens = %d, want %d", stats.CurrentTokens, stats.ToolTokens)
	}
}

func TestStatsZeroMaxContext(t *testing.T) {
	m := DefaultManager()
	stats := m.Stats([]types.Message{{Content: "hello"}}, 0, "", nil)

	if stats.Utilization != 0 {
		t.Errorf("Utilization = %f with zero max context, want 0", stats.Utilization)
	}
	if stats.Headroom != 0 {
		t.Errorf("Headroom = %d, want 0", stats.Headroom)
	}
}

func TestStatsEmptyConversationUsesDefaultAverage(t *testing.T) {
	m := DefaultManager()
	stats := m.Stats(nil, 1000, "", nil)

	// 1000 headroom / DefaultMessageTokens (100) = 10.
	if stats.EstimatedMessagesUntilLimit != 10 {
		t.Errorf("EstimatedMessagesUntilLimit = %d, want 10", stats.EstimatedMessagesUntilLimit)
	}
}

func TestStatsOverBudgetClampsHeadroom(t *testing.T) {
	m := DefaultManager()
	messages := []types.Message{{Content: string(make([]byte, 4000))}}

	stats := m.Stats(messages, 100, "", nil)
	if stats.Headroom != 0 {
		t.Errorf("Headroom = %d, want 0 when over budget", stats.Headroom)
	}
	if stats.Utilization <= 1 {
		t.Errorf("Utilization = %f, want > 1 when over budget", stats.Utilization)
	}
}

func TestUtilizationLevel(t *testing.T) {
	m := DefaultManager()

	tests := []struct {
		utilization float64
		expected    UtilizationLevel
	}{
		{utilization: 0, expected: UtilizationLow},
		{utilization: 0.49, expected: UtilizationLow},
		{utilization: 0.5, expected: UtilizationMedium},
		{utilization: 0.74, expected: UtilizationMedium},
		{utilization: 0.75, expected: UtilizationHigh},
		{utilization: 0.89, expected: UtilizationHigh},
		{utilization: 0.9, expected: UtilizationCritical},
		{utilization: 1.5, expected: UtilizationCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			got := m.UtilizationLevel(tt.utilization)
			if got != tt.expected {
				t.Errorf("UtilizationLevel(%f) = %s, want %s", tt.utilization, got, tt.expected)
			}
		})
	}
}

func TestShouldCompact(t *testing.T) {
	m := DefaultManager()

	if m.ShouldCompact(ContextStats{Utilization: 0.5}) {
		t.Error("ShouldCompact true below threshold")
	}
	if !m.ShouldCompact(ContextStats{Utilization: 0.85}) {
		t.Error("ShouldCompact false above threshold")
	}
}
