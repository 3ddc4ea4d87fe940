package alterer

import (
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type (
	// Option configures an alterer.
	Option func(*options)

	options struct {
		strict bool
		logger log.FieldLogger
	}
)

// Strict makes alter and remove of an absent key an error instead of a no-op.
// Misses are collected and reported by Err, the chain itself never stops.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLogger sets the logger misses are reported to.
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{logger: log.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// miss handles a lookup that found nothing and returns the updated error.
func (o options) miss(err error, op string, key interface{}) error {
	logger := o.logger.WithFields(log.Fields{"op": op, "key": key})
	if !o.strict {
		logger.Debug("key not found, skipping")
		return err
	}

	logger.Warn("key not found")
	return multierr.Append(err, &NotFoundError{Op: op, Key: key})
}
