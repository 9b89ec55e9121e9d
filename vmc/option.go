package vmc

import (
	"github.com/rs/zerolog"

	"github.com/chabad360/go-vmc/osc"
)

// DefaultMaxDatagramSize is the receive buffer size; it holds any UDP datagram.
const DefaultMaxDatagramSize = 64 * 1024

// options holds the configuration shared by transports, performers and marionettes.
type options struct {
	logger          zerolog.Logger
	maxDatagramSize int // receive buffer size, larger datagrams are truncated by the OS
	decoder         osc.Decoder
}

// Option is a function that configures a Performer, Marionette or transport.
type Option func(*options)

// WithLogger returns an Option that sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxDatagramSize returns an Option that sets the receive buffer size of
// transports created by Listen and Dial.
func WithMaxDatagramSize(size int) Option {
	return func(o *options) {
		o.maxDatagramSize = size
	}
}

// WithDecoder returns an Option that sets the decoder Marionette.Messages parses with.
func WithDecoder(d osc.Decoder) Option {
	return func(o *options) {
		o.decoder = d
	}
}

func newOptions(opt []Option) options {
	opts := options{logger: zerolog.Nop()}
	for _, o := range opt {
		o(&opts)
	}
	if opts.maxDatagramSize <= 0 {
		opts.maxDatagramSize = DefaultMaxDatagramSize
	}
	return opts
}
