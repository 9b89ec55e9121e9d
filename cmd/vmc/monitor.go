package main

import (
	"context"
	"net"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chabad360/go-vmc/internal/metrics"
	"github.com/chabad360/go-vmc/osc"
	"github.com/chabad360/go-vmc/vmc"
)

func monitorCmd(a *app) *cobra.Command {
	var (
		addr        string
		metricsAddr string
		only        []string
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Listen as a marionette and log received messages",
		Long: `Listen as a marionette and log every message received.

Recognized messages are logged at debug level, unrecognized and invalid
ones at info and warn. Use --only to log just the given addresses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Marionette.Addr = addr
			}
			if !cmd.Flags().Changed("metrics-addr") {
				metricsAddr = a.cfg.Metrics.Addr
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			d, err := a.monitorDispatcher(only)
			if err != nil {
				return err
			}
			return a.monitor(cmd.Context(), metricsAddr, d)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Only log these addresses")

	return cmd
}

// monitorDispatcher logs every catalog address, or just those in only.
func (a *app) monitorDispatcher(only []string) (*vmc.Dispatcher, error) {
	d := &vmc.Dispatcher{
		Unrecognized: func(raw *osc.Message, from net.Addr) {
			a.log.Info().Stringer("from", from).Str("message", raw.String()).Msg("unrecognized")
		},
		Invalid: func(err error, raw *osc.Message, from net.Addr) {
			ev := a.log.Warn().Err(err).Stringer("from", from)
			if raw != nil {
				ev = ev.Str("message", raw.String())
			}
			ev.Msg("invalid message")
		},
	}

	addrs := only
	if len(addrs) == 0 {
		addrs = vmc.Addresses()
	}
	for _, addr := range addrs {
		if err := d.AddHandler(addr, logHandler(a.log)); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func logHandler(log zerolog.Logger) vmc.HandlerFunc {
	return func(msg vmc.Message, from net.Addr) {
		log.Debug().
			Stringer("from", from).
			Str("type", vmc.Kind(msg)).
			Interface("value", msg).
			Msg(msg.Address())
	}
}

func (a *app) listen() (*vmc.Marionette, error) {
	return vmc.ListenMarionette(a.cfg.Marionette.Addr,
		vmc.WithLogger(a.log),
		vmc.WithMaxDatagramSize(a.cfg.Marionette.MaxDatagramSize),
		vmc.WithDecoder(a.decoder()),
	)
}

func (a *app) monitor(ctx context.Context, metricsAddr string, d *vmc.Dispatcher) error {
	mar, err := a.listen()
	if err != nil {
		return err
	}
	defer mar.Close()

	g, ctx := errgroup.WithContext(ctx)
	m, serve := a.serveMetrics(ctx, metricsAddr)
	g.Go(serve)
	g.Go(func() error {
		a.log.Info().Str("addr", a.cfg.Marionette.Addr).Msg("listening")
		return a.receiveLoop(ctx, mar, m, func(dg vmc.Datagram, outcomes []vmc.Outcome) error {
			d.Dispatch(outcomes, dg.From)
			return nil
		})
	})
	return g.Wait()
}

// receiveLoop reads datagrams until ctx is done, parsing and counting each
// one before handing it to fn. Malformed datagrams are logged and skipped.
func (a *app) receiveLoop(ctx context.Context, mar *vmc.Marionette, m *metrics.Metrics, fn func(vmc.Datagram, []vmc.Outcome) error) error {
	p := &vmc.Parser{Decoder: a.decoder()}
	for dg, err := range mar.Datagrams(ctx) {
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		outcomes, perr := p.Parse(dg.Data)
		m.ObserveDatagram(len(dg.Data), outcomes, perr)
		if perr != nil {
			var de *osc.DecodeError
			if errors.As(perr, &de) {
				a.log.Debug().Err(perr).Int("offset", de.Offset).Stringer("from", dg.From).Msg("malformed datagram")
			}
		}
		if err := fn(dg, outcomes); err != nil {
			return err
		}
	}
	return nil
}
