package types

// Role represents the message role
type Role string

const (
	// RoleUser represents a user message
	RoleUser Role = "user"

	// RoleAssistant represents an assistant message
	RoleAssistant Role = "assistant"

	// RoleSystem represents a system message
	RoleSystem Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Message represents one turn of a conversation as supplied by the caller.
// The core reads messages but never mutates them; compaction returns new
// slices rather than editing in place.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`

	// Name optionally identifies the speaker (multi-agent setups).
	Name string `json:"name,omitempty"`

	// IsSummary marks a synthetic message produced by summarize compaction.
	// Summary messages never count toward the preserved recent tail.
	IsSummary bool `json:"is_summary,omitempty"`

	// Metadata carries caller-owned fields the core does not interpret.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ToolDefinition describes a tool exposed to the model. Only its serialized
// size matters to this core (token accounting for the tool schema).
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}
