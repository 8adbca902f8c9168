// Package hooks provides observation points for the parsing and context
// management pipelines. Hooks attach at the facade; the core packages
// themselves never log or emit metrics.
package hooks

import (
	"github.com/hearthchat/hearth/contextmgr"
	"github.com/hearthchat/hearth/parse"
)

// ParseHook observes message parsing.
type ParseHook interface {
	// AfterParse runs after a message has been parsed.
	AfterParse(result *parse.ParsedMessage)
}

// CompactionHook observes context compaction.
type CompactionHook interface {
	// BeforeCompaction runs before a compaction pass with the stats that
	// motivated it.
	BeforeCompaction(stats contextmgr.ContextStats)

	// AfterCompaction runs with the resulting compaction event.
	AfterCompaction(event *contextmgr.Event)
}

// ParseHookFunc adapts a function to ParseHook.
type ParseHookFunc func(result *parse.ParsedMessage)

// AfterParse calls f.
func (f ParseHookFunc) AfterParse(result *parse.ParsedMessage) {
	f(result)
}
