package listqueue

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/timzifer/listqueue/internal/telemetry"
)

type options struct {
	maxLen  int
	initial []string
	logger  logrus.FieldLogger
	metrics *telemetry.Metrics
}

// Option configures a ListQueue created by New.
type Option func(*options)

func defaultOptions() options {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return options{logger: logger}
}

// WithMaxLen limits the number of elements the queue can hold. Inserting past
// the limit fails with ErrExhausted. A non-positive n means no limit.
func WithMaxLen(n int) Option {
	return func(opts *options) {
		opts.maxLen = n
	}
}

// WithInitial seeds the queue with values in head-to-tail order.
func WithInitial(values ...string) Option {
	return func(opts *options) {
		opts.initial = append(opts.initial[:0], values...)
	}
}

// WithLogger sets the logger used to report failed operations at debug level.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetrics makes the queue record its operations into m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(opts *options) {
		opts.metrics = m
	}
}
