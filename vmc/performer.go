package vmc

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/chabad360/go-vmc/osc"
)

// Performer sends VMC messages. It owns its transport and is safe for
// concurrent use; the arrival order of concurrently sent datagrams is up to
// the network.
type Performer struct {
	t      Transport
	opts   options
	closed atomic.Bool
}

// NewPerformer returns a Performer sending over t.
func NewPerformer(t Transport, opt ...Option) *Performer {
	return &Performer{t: t, opts: newOptions(opt)}
}

// DialPerformer returns a Performer sending to the UDP address addr.
func DialPerformer(addr string, opt ...Option) (*Performer, error) {
	t, err := Dial(addr, opt...)
	if err != nil {
		return nil, err
	}
	return NewPerformer(t, opt...), nil
}

// Send encodes m as one OSC message and transmits it as one datagram. It
// blocks until the transport accepted the datagram or failed. Transport
// failures are returned as *IOError and are not retried.
func (p *Performer) Send(ctx context.Context, m Message) error {
	if m == nil {
		return errors.New("vmc: send nil message")
	}
	return p.send(ctx, ToOSC(m))
}

// SendBundle sends msgs as one bundle with an immediate time tag, in one datagram.
func (p *Performer) SendBundle(ctx context.Context, msgs ...Message) error {
	b := osc.NewBundle()
	for _, m := range msgs {
		if m == nil {
			return errors.New("vmc: send nil message")
		}
		b.Elements = append(b.Elements, ToOSC(m))
	}
	return p.send(ctx, b)
}

func (p *Performer) send(ctx context.Context, pkt osc.Packet) error {
	if p.closed.Load() {
		return ErrClosed
	}

	data, err := osc.Encode(pkt)
	if err != nil {
		return errors.Wrap(err, "vmc: encode")
	}

	if err := p.t.SendDatagram(ctx, data); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.opts.logger.Debug().Err(err).Int("size", len(data)).Msg("send failed")
		return &IOError{Op: "send", Err: err}
	}
	return nil
}

// Close closes the transport. Later sends return ErrClosed.
func (p *Performer) Close() error {
	if p.closed.Swap(true) {
		return nil // already closed
	}
	return p.t.Close()
}
