package blockify

import (
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/blockify/layout"
)

// Options holds configuration for segmentation.
type Options struct {
	// Page selection (1-indexed), nil means all pages
	pages []int

	// Lane rule
	rule layout.Rule

	// Processing options
	parallel bool
	workers  int
	maxDepth int
	pitch    layout.PitchConfig

	logger logrus.FieldLogger

	// First error raised while applying options
	err error
}

// Option configures a segmentation run.
type Option func(*Options)

// defaultOptions returns the default segmentation options.
func defaultOptions() Options {
	return Options{
		pages:    nil,
		rule:     layout.NewTextRule(),
		parallel: false,
		workers:  runtime.GOMAXPROCS(0),
		maxDepth: 0,
		pitch:    layout.DefaultPitchConfig(),
		logger:   logrus.StandardLogger(),
	}
}

// WithRule selects the lane rule (default: layout.NewTextRule()).
func WithRule(rule layout.Rule) Option {
	return func(o *Options) {
		if rule == nil {
			o.setErr(layout.ErrNilRule)
			return
		}
		o.rule = rule
	}
}

// WithRuleConfig selects the rule described by cfg, typically parsed with
// layout.ParseRuleConfig.
func WithRuleConfig(cfg layout.RuleConfig) Option {
	return func(o *Options) {
		rule, err := cfg.Rule()
		if err != nil {
			o.setErr(err)
			return
		}
		o.rule = rule
	}
}

// WithPages restricts segmentation to the given pages (1-indexed).
// Multiple uses are cumulative.
func WithPages(pages ...int) Option {
	return func(o *Options) {
		o.pages = append(o.pages, pages...)
	}
}

// WithPageRange restricts segmentation to pages start through end
// (1-indexed, inclusive).
func WithPageRange(start, end int) Option {
	return func(o *Options) {
		for i := start; i <= end; i++ {
			o.pages = append(o.pages, i)
		}
	}
}

// WithParallel segments pages, and subtrees within a page, concurrently on
// up to workers goroutines. workers <= 0 means GOMAXPROCS.
func WithParallel(workers int) Option {
	return func(o *Options) {
		o.parallel = true
		if workers > 0 {
			o.workers = workers
		}
	}
}

// WithMaxDepth stops splitting areas at the given tree depth.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.maxDepth = depth
	}
}

// WithPitchConfig customizes line pitch estimation.
func WithPitchConfig(cfg layout.PitchConfig) Option {
	return func(o *Options) {
		o.pitch = cfg
	}
}

// WithLogger sets the logger receiving page summaries and split decisions.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
