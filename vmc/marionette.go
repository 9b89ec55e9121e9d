package vmc

import (
	"context"
	"fmt"
	"iter"
	"net"
	"sync/atomic"

	"github.com/pkg/errors"
)

// StreamState is the state of a Marionette's datagram stream.
type StreamState int32

const (
	// AwaitingDatagram means no datagram is pending; a receive is outstanding or about to be issued.
	AwaitingDatagram StreamState = iota
	// ItemReady means the last Next returned a datagram.
	ItemReady
	// Closed is terminal. No further datagrams are produced.
	Closed
)

func (s StreamState) String() string {
	switch s {
	case AwaitingDatagram:
		return "awaiting datagram"
	case ItemReady:
		return "item ready"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("StreamState(%d)", int32(s))
}

// Datagram is one received datagram.
type Datagram struct {
	Data []byte
	From net.Addr
}

// Marionette receives datagrams one at a time, in arrival order. It doesn't
// decode them; see Parse. A Marionette is a single consumer stream: Next must
// not be called concurrently.
type Marionette struct {
	t      Transport
	opts   options
	parser Parser

	state atomic.Int32
	busy  atomic.Bool
}

// NewMarionette returns a Marionette receiving from t.
func NewMarionette(t Transport, opt ...Option) *Marionette {
	opts := newOptions(opt)
	return &Marionette{t: t, opts: opts, parser: Parser{Decoder: opts.decoder}}
}

// ListenMarionette returns a Marionette receiving on the UDP address addr.
func ListenMarionette(addr string, opt ...Option) (*Marionette, error) {
	t, err := Listen(addr, opt...)
	if err != nil {
		return nil, err
	}
	return NewMarionette(t, opt...), nil
}

// State returns the current state of the stream.
func (m *Marionette) State() StreamState {
	return StreamState(m.state.Load())
}

// Next blocks until a datagram arrives and returns it. If ctx is done first,
// Next returns ctx.Err() and the stream stays usable. A transport failure is
// returned once as *IOError; the stream is then Closed and every later call
// returns ErrClosed.
func (m *Marionette) Next(ctx context.Context) (Datagram, error) {
	if !m.busy.CompareAndSwap(false, true) {
		return Datagram{}, ErrConcurrentNext
	}
	defer m.busy.Store(false)

	if !m.transition(AwaitingDatagram) {
		return Datagram{}, ErrClosed
	}

	data, from, err := m.t.ReceiveDatagram(ctx)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return Datagram{}, err
		}
		if m.State() == Closed {
			return Datagram{}, ErrClosed
		}
		m.state.Store(int32(Closed))
		_ = m.t.Close()
		m.opts.logger.Error().Err(err).Msg("receive failed, closing stream")
		return Datagram{}, &IOError{Op: "receive", Err: err}
	}

	if !m.transition(ItemReady) {
		return Datagram{}, ErrClosed
	}
	m.opts.logger.Trace().Int("size", len(data)).Stringer("from", from).Msg("datagram received")
	return Datagram{Data: data, From: from}, nil
}

// transition moves the stream to s unless it is Closed.
func (m *Marionette) transition(s StreamState) bool {
	for {
		cur := m.state.Load()
		if StreamState(cur) == Closed {
			return false
		}
		if m.state.CompareAndSwap(cur, int32(s)) {
			return true
		}
	}
}

// Close closes the stream and its transport. A pending Next returns ErrClosed.
func (m *Marionette) Close() error {
	if StreamState(m.state.Swap(int32(Closed))) == Closed {
		return nil // already closed
	}
	return m.t.Close()
}

// Datagrams returns an iterator over received datagrams. It stops silently
// once the stream is closed; any other error is yielded once before it stops.
func (m *Marionette) Datagrams(ctx context.Context) iter.Seq2[Datagram, error] {
	return func(yield func(Datagram, error) bool) {
		for {
			d, err := m.Next(ctx)
			if err != nil {
				if !errors.Is(err, ErrClosed) {
					yield(Datagram{}, err)
				}
				return
			}
			if !yield(d, nil) {
				return
			}
		}
	}
}

// Messages returns an iterator over the outcomes of every received datagram,
// parsed with the configured decoder. A datagram that fails to decode yields
// its error and iteration continues with the next datagram.
func (m *Marionette) Messages(ctx context.Context) iter.Seq2[Outcome, error] {
	return func(yield func(Outcome, error) bool) {
		for d, err := range m.Datagrams(ctx) {
			if err != nil {
				yield(Outcome{}, err)
				return
			}

			outcomes, err := m.parser.Parse(d.Data)
			if err != nil {
				m.opts.logger.Debug().Err(err).Stringer("from", d.From).Msg("dropping malformed datagram")
				if !yield(Outcome{}, err) {
					return
				}
				continue
			}
			for _, o := range outcomes {
				if !yield(o, nil) {
					return
				}
			}
		}
	}
}
