package vmc

import (
	"net"

	"github.com/pkg/errors"

	"github.com/chabad360/go-vmc/osc"
)

// Handler is an interface for VMC message handlers.
type Handler interface {
	HandleMessage(msg Message, from net.Addr)
}

// HandlerFunc implements the Handler interface. Type definition for a handler function.
type HandlerFunc func(msg Message, from net.Addr)

// HandleMessage calls itself with the given message. Implements the Handler interface.
func (f HandlerFunc) HandleMessage(msg Message, from net.Addr) {
	f(msg, from)
}

// Dispatcher routes outcomes to handlers registered for their exact address.
type Dispatcher struct {
	handlers map[string]Handler

	// Unrecognized, if set, receives messages whose address isn't in the catalog.
	Unrecognized func(raw *osc.Message, from net.Addr)
	// Invalid, if set, receives messages that failed catalog validation.
	Invalid func(err error, raw *osc.Message, from net.Addr)
}

// AddHandler adds a handler for the given catalog address.
func (d *Dispatcher) AddHandler(addr string, h Handler) error {
	if d.handlers == nil {
		d.handlers = make(map[string]Handler)
	}

	if _, ok := catalog[addr]; !ok {
		return errors.Errorf("AddHandler: %q is not a VMC address", addr)
	}

	if _, ok := d.handlers[addr]; ok {
		return errors.Errorf("AddHandler: handler for %q exists already", addr)
	}

	d.handlers[addr] = h
	return nil
}

// AddHandlerFunc allows you to just pass a HandlerFunc.
func (d *Dispatcher) AddHandlerFunc(addr string, f HandlerFunc) error {
	return d.AddHandler(addr, f)
}

// Dispatch hands every outcome to its handler, in order.
func (d *Dispatcher) Dispatch(outcomes []Outcome, from net.Addr) {
	for _, o := range outcomes {
		switch o.Kind {
		case Recognized:
			if h, ok := d.handlers[o.Message.Address()]; ok {
				h.HandleMessage(o.Message, from)
			}
		case Unrecognized:
			if d.Unrecognized != nil {
				d.Unrecognized(o.Raw, from)
			}
		case Invalid:
			if d.Invalid != nil {
				d.Invalid(o.Err, o.Raw, from)
			}
		}
	}
}
