package contextmgr

import "fmt"

// Default configuration values.
const (
	// DefaultPreserveRecentMessages is the number of recent messages every
	// strategy keeps verbatim.
	DefaultPreserveRecentMessages = 4

	// DefaultTargetAfterCompaction is the fraction of the context window the
	// conversation should occupy after compaction.
	DefaultTargetAfterCompaction = 0.5

	// DefaultCompactionThreshold is the utilization at which compaction is
	// recommended.
	DefaultCompactionThreshold = 0.8

	// DefaultCharsPerToken is the character-to-token ratio for the length
	// heuristic. An approximation, not a tokenizer-accurate figure.
	DefaultCharsPerToken = 4

	// DefaultMessageOverheadTokens is the fixed per-message cost added for
	// role and formatting structure.
	DefaultMessageOverheadTokens = 4

	// DefaultMessageTokens is the assumed per-message cost when estimating
	// remaining headroom for an empty conversation.
	DefaultMessageTokens = 100

	// SummaryLineLimit is the per-message character cap applied to the
	// transcript inside a summarize-compaction message.
	SummaryLineLimit = 200
)

// Config holds context management configuration. The token constants are
// heuristics with no tokenizer-level precision; treat them as tunables.
type Config struct {
	// PreserveRecentMessages is the number of most recent messages no
	// strategy may remove.
	// Default: 4
	PreserveRecentMessages int

	// TargetAfterCompaction is the fraction of max context the kept
	// conversation should fit within after compaction.
	// Default: 0.5
	TargetAfterCompaction float64

	// CompactionThreshold is the utilization above which ShouldCompact
	// reports true. The core never self-triggers; checking is the caller's
	// responsibility.
	// Default: 0.8
	CompactionThreshold float64

	// CharsPerToken is the divisor for the length-based token estimate.
	// Default: 4
	CharsPerToken int

	// MessageOverheadTokens is the fixed per-message token overhead.
	// Default: 4
	MessageOverheadTokens int

	// DefaultMessageTokens is the assumed per-message cost used when the
	// conversation is empty and no average can be computed.
	// Default: 100
	DefaultMessageTokens int
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		PreserveRecentMessages: DefaultPreserveRecentMessages,
		TargetAfterCompaction:  DefaultTargetAfterCompaction,
		CompactionThreshold:    DefaultCompactionThreshold,
		CharsPerToken:          DefaultCharsPerToken,
		MessageOverheadTokens:  DefaultMessageOverheadTokens,
		DefaultMessageTokens:   DefaultMessageTokens,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.PreserveRecentMessages == 0 {
		c.PreserveRecentMessages = DefaultPreserveRecentMessages
	}
	if c.TargetAfterCompaction == 0 {
		c.TargetAfterCompaction = DefaultTargetAfterCompaction
	}
	if c.CompactionThreshold == 0 {
		c.CompactionThreshold = DefaultCompactionThreshold
	}
	if c.CharsPerToken == 0 {
		c.CharsPerToken = DefaultCharsPerToken
	}
	if c.MessageOverheadTokens == 0 {
		c.MessageOverheadTokens = DefaultMessageOverheadTokens
	}
	if c.DefaultMessageTokens == 0 {
		c.DefaultMessageTokens = DefaultMessageTokens
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.PreserveRecentMessages < 0 {
		return fmt.Errorf("%w: preserve_recent_messages must be non-negative, got %d",
			ErrInvalidConfig, c.PreserveRecentMessages)
	}
	if c.TargetAfterCompaction <= 0 || c.TargetAfterCompaction > 1.0 {
		return fmt.Errorf("%w: target_after_compaction must be between 0 and 1, got %f",
			ErrInvalidConfig, c.TargetAfterCompaction)
	}
	if c.CompactionThreshold <= 0 || c.CompactionThreshold > 1.0 {
		return fmt.Errorf("%w: compaction_threshold must be between 0 and 1, got %f",
			ErrInvalidConfig, c.CompactionThreshold)
	}
	if c.CharsPerToken <= 0 {
		return fmt.Errorf("%w: chars_per_token must be positive, got %d",
			ErrInvalidConfig, c.CharsPerToken)
	}
	if c.MessageOverheadTokens < 0 {
		return fmt.Errorf("%w: message_overhead_tokens must be non-negative, got %d",
			ErrInvalidConfig, c.MessageOverheadTokens)
	}
	return nil
}
