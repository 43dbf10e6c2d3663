package prioq

import (
	"go.uber.org/zap"

	"github.com/davidvella/prioq/metrics"
	"github.com/davidvella/prioq/minheap"
)

// options defines all configuration options for the queue.
type options struct {
	// Storage options
	initialCapacity int // Slots allocated up front
	growth          int // Slots appended whenever storage is full

	// Observability options
	logger  *zap.Logger
	metrics *metrics.Heap
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithInitialCapacity sets how many slots the queue allocates up front.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithGrowth sets the fixed number of slots added when the queue is full.
func WithGrowth(n int) Option {
	return func(o *options) {
		o.growth = n
	}
}

// WithLogger sets the logger for debug events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics instruments the queue with the given collectors.
func WithMetrics(m *metrics.Heap) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		initialCapacity: minheap.DefaultInitialCapacity,
		growth:          minheap.DefaultGrowth,
	}
}

func (o options) heapOptions() []minheap.Option {
	opts := []minheap.Option{
		minheap.WithInitialCapacity(o.initialCapacity),
		minheap.WithGrowth(o.growth),
		minheap.WithMetrics(o.metrics),
	}
	if o.logger != nil {
		opts = append(opts, minheap.WithLogger(o.logger.With(zap.String("component", "prioq"))))
	}
	return opts
}
