package huffman

import (
	"go.uber.org/zap"
)

const defaultBufferSize = 4096

// Options holds the settings shared by Compress and Decompress.
type Options struct {
	// Logger receives Debug summaries and Warn reports.  Defaults to a
	// no-op logger.
	Logger *zap.Logger

	// BufferSize is the size of the buffers placed in front of the caller's
	// reader and writer.
	BufferSize int

	// MaxOutput, if non-zero, is the largest symbol count Decompress will
	// accept from a frequency header.
	MaxOutput uint64
}

// Option configures Compress and Decompress.
type Option func(*Options)

// WithLogger sets the logger used for Debug summaries and Warn reports.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithBufferSize sets the size of the buffers around the caller's streams.
func WithBufferSize(size int) Option {
	return func(o *Options) {
		o.BufferSize = size
	}
}

// WithMaxOutput makes Decompress reject, before writing anything, artifacts
// that would decode to more than n bytes.
func WithMaxOutput(n uint64) Option {
	return func(o *Options) {
		o.MaxOutput = n
	}
}

func newOptions(opts []Option) Options {
	o := Options{BufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.BufferSize <= 0 {
		o.BufferSize = defaultBufferSize
	}
	return o
}
