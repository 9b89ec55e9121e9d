package main

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chabad360/go-vmc/internal/record"
	"github.com/chabad360/go-vmc/vmc"
)

func recordCmd(a *app) *cobra.Command {
	var (
		addr     string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "record <file>",
		Short: "Record received datagrams to a capture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Marionette.Addr = addr
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			ctx := cmd.Context()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}
			return a.record(ctx, args[0])
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from config)")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "Stop after this long (default: until interrupted)")

	return cmd
}

func (a *app) record(ctx context.Context, path string) error {
	mar, err := a.listen()
	if err != nil {
		return err
	}
	defer mar.Close()

	w, err := record.Create(path, a.cfg.Marionette.Addr)
	if err != nil {
		return err
	}
	defer w.Close()

	a.log.Info().
		Str("file", path).
		Str("session", w.Header().Session).
		Str("addr", a.cfg.Marionette.Addr).
		Msg("recording")

	g, ctx := errgroup.WithContext(ctx)
	m, _ := a.serveMetrics(ctx, "")
	var n int
	g.Go(func() error {
		return a.receiveLoop(ctx, mar, m, func(dg vmc.Datagram, _ []vmc.Outcome) error {
			n++
			return w.Write(time.Now(), dg.From, dg.Data)
		})
	})
	err = g.Wait()
	a.log.Info().Int("datagrams", n).Msg("recording stopped")
	return err
}

func dumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a capture file as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := record.Open(args[0])
			if err != nil {
				return err
			}
			defer r.Close()
			return record.Dump(cmd.OutOrStdout(), r, &vmc.Parser{Decoder: a.decoder()})
		},
	}
}

func replayCmd(a *app) *cobra.Command {
	var (
		addr  string
		speed float64
		loop  bool
	)

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Send a capture file to a marionette with its original timing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Performer.Addr = addr
			}
			if speed <= 0 {
				return errors.Errorf("speed must be positive, got %v", speed)
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			t, err := vmc.Dial(a.cfg.Performer.Addr, vmc.WithLogger(a.log))
			if err != nil {
				return err
			}
			defer t.Close()

			for {
				n, err := a.replay(cmd.Context(), args[0], t, speed)
				a.log.Info().Int("datagrams", n).Msg("replay finished")
				if err != nil || !loop || cmd.Context().Err() != nil {
					return err
				}
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Marionette address (default from config)")
	cmd.Flags().Float64VarP(&speed, "speed", "s", 1, "Playback speed multiplier")
	cmd.Flags().BoolVarP(&loop, "loop", "l", false, "Replay until interrupted")

	return cmd
}

// replay sends every entry of the capture at path through t, preserving the
// gaps between entries scaled by 1/speed.
func (a *app) replay(ctx context.Context, path string, t vmc.Transport, speed float64) (int, error) {
	r, err := record.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	var (
		n    int
		prev time.Time
	)
	for {
		e, err := r.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}

		if !prev.IsZero() {
			gap := time.Duration(float64(e.At.Sub(prev)) / speed)
			if gap > 0 {
				timer := time.NewTimer(gap)
				select {
				case <-ctx.Done():
					timer.Stop()
					return n, nil
				case <-timer.C:
				}
			}
		}
		prev = e.At

		if err := t.SendDatagram(ctx, e.Data); err != nil {
			if ctx.Err() != nil {
				return n, nil
			}
			return n, errors.Wrap(err, "replay")
		}
		n++
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every known address and its type tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, addr := range vmc.Addresses() {
				for _, sig := range vmc.Signatures(addr) {
					if _, err := io.WriteString(out, addr+" "+sig+"\n"); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
