package hearth

import (
	"github.com/hearthchat/hearth/contextmgr"
	"github.com/hearthchat/hearth/hooks"
	"github.com/hearthchat/hearth/parse"
)

type clientConfig struct {
	parserConfig    parse.Config
	contextConfig   contextmgr.Config
	managerOpts     []contextmgr.ManagerOption
	parseHooks      []hooks.ParseHook
	compactionHooks []hooks.CompactionHook
}

// Option is a functional option for configuring a Client
type Option func(*clientConfig) error

// WithParserConfig replaces the default parsing configuration
func WithParserConfig(cfg parse.Config) Option {
	return func(c *clientConfig) error {
		c.parserConfig = cfg
		return nil
	}
}

// WithContextConfig replaces the default context management configuration.
// Zero fields are filled with defaults when the Client is built.
func WithContextConfig(cfg contextmgr.Config) Option {
	return func(c *clientConfig) error {
		c.contextConfig = cfg
		return nil
	}
}

// WithEstimator supplies a token estimator for all context accounting
func WithEstimator(estimator contextmgr.TokenEstimator) Option {
	return func(c *clientConfig) error {
		c.managerOpts = append(c.managerOpts, contextmgr.WithEstimator(estimator))
		return nil
	}
}

// WithHooks registers a hook for every interface it implements
func WithHooks(hookSets ...any) Option {
	return func(c *clientConfig) error {
		for _, h := range hookSets {
			registered := false
			if ph, ok := h.(hooks.ParseHook); ok {
				c.parseHooks = append(c.parseHooks, ph)
				registered = true
			}
			if ch, ok := h.(hooks.CompactionHook); ok {
				c.compactionHooks = append(c.compactionHooks, ch)
				registered = true
			}
			if !registered {
				return ErrInvalidHook
			}
		}
		return nil
	}
}
