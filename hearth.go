package hearth

import (
	"github.com/hearthchat/hearth/contextmgr"
	"github.com/hearthchat/hearth/hooks"
	"github.com/hearthchat/hearth/parse"
	"github.com/hearthchat/hearth/types"
)

// Client bundles the message parsing service and the context manager behind
// one surface and runs registered hooks around their operations. It holds no
// conversation state beyond the parse cache.
type Client struct {
	parser  *parse.Service
	context *contextmgr.Manager

	parseHooks      []hooks.ParseHook
	compactionHooks []hooks.CompactionHook
}

// New creates a Client. With no options it uses the default parsing pipeline
// and context configuration.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		parserConfig:  parse.DefaultConfig(),
		contextConfig: contextmgr.DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	manager, err := contextmgr.NewManager(cfg.contextConfig, cfg.managerOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		parser:          parse.NewService(cfg.parserConfig),
		context:         manager,
		parseHooks:      cfg.parseHooks,
		compactionHooks: cfg.compactionHooks,
	}, nil
}

// Parser returns the underlying parsing service.
func (c *Client) Parser() *parse.Service {
	return c.parser
}

// Context returns the underlying context manager.
func (c *Client) Context() *contextmgr.Manager {
	return c.context
}

// ParseMessage parses one message and notifies parse hooks. Streaming
// parses skip hook notification; only completed messages are observed.
func (c *Client) ParseMessage(content string, opts parse.Options) *parse.ParsedMessage {
	result := c.parser.Parse(content, opts)
	if !opts.IsStreaming {
		for _, h := range c.parseHooks {
			h.AfterParse(result)
		}
	}
	return result
}

// ContextStats computes the current token accounting for a conversation.
func (c *Client) ContextStats(messages []types.Message, maxContext int, systemPrompt string, tools []types.ToolDefinition) contextmgr.ContextStats {
	return c.context.Stats(messages, maxContext, systemPrompt, tools)
}

// ShouldCompact reports whether stats crossed the compaction threshold.
func (c *Client) ShouldCompact(stats contextmgr.ContextStats) bool {
	return c.context.ShouldCompact(stats)
}

// CompactContext runs one compaction pass with the given strategy, notifying
// compaction hooks before and after.
func (c *Client) CompactContext(messages []types.Message, maxContext int, strategy contextmgr.Strategy) ([]types.Message, *contextmgr.Event, error) {
	stats := c.context.Stats(messages, maxContext, "", nil)
	for _, h := range c.compactionHooks {
		h.BeforeCompaction(stats)
	}

	kept, event, err := c.context.Compact(messages, maxContext, strategy)
	if err != nil {
		return nil, nil, err
	}

	for _, h := range c.compactionHooks {
		h.AfterCompaction(event)
	}
	return kept, event, nil
}
