package calc

import (
	"github.com/ardnew/unitcalc/log"
	"github.com/ardnew/unitcalc/quantity"
)

// Option configures evaluation.
type Option func(*evaluator)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(ev *evaluator) {
		ev.logger = logger
	}
}

// WithRegistry sets the unit registry used to parse literals.
// A nil registry selects [quantity.DefaultRegistry].
func WithRegistry(registry *quantity.Registry) Option {
	return func(ev *evaluator) {
		ev.registry = registry
	}
}

func makeEvaluator(opts ...Option) evaluator {
	var ev evaluator

	for _, opt := range opts {
		opt(&ev)
	}

	if ev.registry == nil {
		ev.registry = quantity.DefaultRegistry()
	}

	return ev
}
