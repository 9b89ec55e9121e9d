package vmc

import (
	"fmt"

	"github.com/chabad360/go-vmc/osc"
)

// OutcomeKind classifies the result of converting one OSC message.
type OutcomeKind int

const (
	// Recognized means the message matched a catalog entry.
	Recognized OutcomeKind = iota
	// Unrecognized means the address is not in the catalog. Raw holds the message.
	Unrecognized
	// Invalid means the address is in the catalog but the arguments don't
	// match. Err holds a *MessageError.
	Invalid
)

func (k OutcomeKind) String() string {
	switch k {
	case Recognized:
		return "recognized"
	case Unrecognized:
		return "unrecognized"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the result of converting one OSC message found in a datagram.
type Outcome struct {
	Kind    OutcomeKind
	Message Message
	// Raw is the OSC message the outcome was produced from.
	Raw *osc.Message
	// Timetag is the time tag of the innermost enclosing bundle, or
	// osc.Immediately for a message sent on its own.
	Timetag osc.Timetag
	Err     error
}

// Parser converts datagrams into outcomes.
type Parser struct {
	Decoder osc.Decoder
}

// Parse decodes data with the default decoder and converts every message in it.
func Parse(data []byte) ([]Outcome, error) {
	return (&Parser{}).Parse(data)
}

// Parse decodes one datagram. A framing error fails the whole datagram and
// is the only error returned. Bundles are flattened depth first, and every
// message yields exactly one outcome in the order it appeared.
func (p *Parser) Parse(data []byte) ([]Outcome, error) {
	pkt, err := p.Decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return ParsePacket(pkt), nil
}

// ParsePacket converts every message of an already decoded packet.
func ParsePacket(p osc.Packet) []Outcome {
	return appendOutcomes(nil, p, osc.Immediately)
}

func appendOutcomes(out []Outcome, p osc.Packet, tt osc.Timetag) []Outcome {
	switch p := p.(type) {
	case *osc.Message:
		out = append(out, outcomeOf(p, tt))
	case *osc.Bundle:
		for _, elem := range p.Elements {
			out = appendOutcomes(out, elem, p.Timetag)
		}
	}
	return out
}

func outcomeOf(m *osc.Message, tt osc.Timetag) Outcome {
	msg, ok, err := FromOSC(m)
	switch {
	case !ok:
		return Outcome{Kind: Unrecognized, Raw: m, Timetag: tt}
	case err != nil:
		return Outcome{Kind: Invalid, Raw: m, Timetag: tt, Err: err}
	default:
		return Outcome{Kind: Recognized, Message: msg, Raw: m, Timetag: tt}
	}
}

// MessagesOf returns the recognized messages of outcomes, dropping the rest.
func MessagesOf(outcomes []Outcome) []Message {
	msgs := make([]Message, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Kind == Recognized {
			msgs = append(msgs, o.Message)
		}
	}
	return msgs
}
