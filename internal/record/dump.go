package record

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/chabad360/go-vmc/vmc"
)

// DatagramDoc is the YAML form of one captured datagram.
type DatagramDoc struct {
	At       time.Time    `yaml:"at"`
	From     string       `yaml:"from,omitempty"`
	Size     int          `yaml:"size"`
	Error    string       `yaml:"error,omitempty"`
	Messages []MessageDoc `yaml:"messages,omitempty"`
}

// MessageDoc is the YAML form of one parse outcome.
type MessageDoc struct {
	Outcome string      `yaml:"outcome"`
	Address string      `yaml:"address"`
	Type    string      `yaml:"type,omitempty"`
	Timetag string      `yaml:"timetag,omitempty"`
	Value   vmc.Message `yaml:"value,omitempty"`
	Raw     string      `yaml:"raw,omitempty"`
	Error   string      `yaml:"error,omitempty"`
}

// Describe parses e and returns its YAML document.
func Describe(e Entry, p *vmc.Parser) DatagramDoc {
	doc := DatagramDoc{At: e.At, From: e.From, Size: len(e.Data)}
	outcomes, err := p.Parse(e.Data)
	if err != nil {
		doc.Error = err.Error()
		return doc
	}
	for _, o := range outcomes {
		md := MessageDoc{Outcome: o.Kind.String()}
		if !o.Timetag.IsImmediate() {
			md.Timetag = o.Timetag.Time().UTC().Format(time.RFC3339Nano)
		}
		switch o.Kind {
		case vmc.Recognized:
			md.Address = o.Message.Address()
			md.Type = vmc.Kind(o.Message)
			md.Value = o.Message
		default:
			if o.Raw != nil {
				md.Address = o.Raw.Address
				md.Raw = o.Raw.String()
			}
			if o.Err != nil {
				md.Error = o.Err.Error()
			}
		}
		doc.Messages = append(doc.Messages, md)
	}
	return doc
}

// Dump writes every remaining entry of r to w as a YAML document stream.
func Dump(w io.Writer, r *Reader, p *vmc.Parser) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := enc.Encode(Describe(e, p)); err != nil {
			return errors.Wrap(err, "record: dump")
		}
	}
	return enc.Close()
}
