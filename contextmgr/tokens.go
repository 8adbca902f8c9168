package contextmgr

import (
	"fmt"

	"github.com/hearthchat/hearth/types"
)

// EstimateTokens approximates the token cost of text from its length:
// ceil(len / CharsPerToken), 0 for empty text. The estimate is monotonic in
// text length and documented as an approximation; it matches no real
// tokenizer's output.
func (m *Manager) EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return m.estimator.Estimate(text)
}

// MessageTokens sums the estimated tokens of each message plus a fixed
// per-message overhead for role and formatting structure. Additive and
// order-independent.
func (m *Manager) MessageTokens(messages []types.Message) int {
	total := 0
	for _, msg := range messages {
		total += m.EstimateTokens(msg.Content) + m.config.MessageOverheadTokens
	}
	return total
}

// FormatTokenCount renders a token count for humans: plain below 1,000,
// one-decimal K below 1,000,000, one-decimal M above.
func FormatTokenCount(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}
