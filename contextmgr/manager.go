package contextmgr

// Manager estimates token cost for a conversation, classifies context
// utilization, and runs compaction strategies on demand. All operations are
// synchronous and pure; the manager holds no conversation state and never
// self-triggers compaction.
type Manager struct {
	config    Config
	estimator TokenEstimator
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithEstimator replaces the default length-heuristic estimator. The same
// estimator is used for every token count the manager produces, so
// utilization values stay internally consistent across calls.
func WithEstimator(estimator TokenEstimator) ManagerOption {
	return func(m *Manager) {
		m.estimator = estimator
	}
}

// NewManager creates a context manager with the given configuration. Zero
// config fields are filled with defaults; an invalid configuration is
// reported rather than silently corrected.
func NewManager(config Config, opts ...ManagerOption) (*Manager, error) {
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	m := &Manager{
		config:    config,
		estimator: HeuristicEstimator{CharsPerToken: config.CharsPerToken},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// DefaultManager creates a manager with default configuration.
func DefaultManager() *Manager {
	m, err := NewManager(DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return m
}

// Config returns the manager's effective configuration.
func (m *Manager) Config() Config {
	return m.config
}

// ShouldCompact reports whether utilization has crossed the configured
// compaction threshold. The decision to actually compact stays with the
// caller.
func (m *Manager) ShouldCompact(stats ContextStats) bool {
	return stats.Utilization >= m.config.CompactionThreshold
}
