package minheap

import (
	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/davidvella/prioq/metrics"
)

const (
	// DefaultInitialCapacity is the number of slots allocated by New.
	DefaultInitialCapacity = 10
	// DefaultGrowth is the number of slots appended whenever storage is full.
	DefaultGrowth = 10
)

// options defines the configuration of a Heap.
type options struct {
	initialCapacity int // Slots allocated up front
	growth          int // Fixed number of slots added when full
	logger          *zap.Logger
	metrics         *metrics.Heap
}

// Option is a function that configures a Heap.
type Option func(*options)

// WithInitialCapacity sets the number of slots allocated up front. Negative
// values are ignored.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.initialCapacity = n
		}
	}
}

// WithGrowth sets how many slots are appended when storage is full. Storage
// grows by this fixed increment rather than doubling. Values below 1 are
// ignored.
func WithGrowth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.growth = n
		}
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics instruments the heap with the given collectors.
func WithMetrics(m *metrics.Heap) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		initialCapacity: DefaultInitialCapacity,
		growth:          DefaultGrowth,
		logger:          log.L().With(zap.String("component", "minheap")),
	}
}
