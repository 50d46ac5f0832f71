package kvstore

import "github.com/rs/zerolog"

const defaultCacheSize = 8 << 20

type options struct {
	cacheSize int64
	readOnly  bool
	logger    zerolog.Logger
}

func defaultOptions() options {
	return options{
		cacheSize: defaultCacheSize,
		logger:    zerolog.Nop(),
	}
}

// Option is a function that configures the store.
type Option func(*options)

// WithCacheSize sets the size in bytes of the engine's block cache.
func WithCacheSize(size int64) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithReadOnly opens the store in read-only mode; Set and Delete fail.
func WithReadOnly() Option {
	return func(o *options) {
		o.readOnly = true
	}
}

// WithLogger routes the store's event log through logger. Events are
// discarded by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// eventLogger adapts zerolog to the engine's logging interface.
type eventLogger struct {
	log zerolog.Logger
}

func (l eventLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l eventLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l eventLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatal().Msgf(format, args...)
}
