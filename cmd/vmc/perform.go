package main

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chabad360/go-vmc/internal/metrics"
	"github.com/chabad360/go-vmc/vmc"
)

func performCmd(a *app) *cobra.Command {
	var (
		addr        string
		rate        int
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "perform",
		Short: "Stream a test pose to a marionette",
		Long: `Stream an idle animation to a marionette at a fixed frame rate.

Each frame is sent as one bundle holding the root and bone transforms,
a blink, the apply marker, the model state and the elapsed time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Performer.Addr = addr
			}
			if cmd.Flags().Changed("rate") {
				a.cfg.Performer.Rate = rate
			}
			if !cmd.Flags().Changed("metrics-addr") {
				metricsAddr = a.cfg.Metrics.Addr
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.perform(cmd.Context(), metricsAddr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Marionette address (default from config)")
	cmd.Flags().IntVarP(&rate, "rate", "r", 0, "Frames per second (default from config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")

	return cmd
}

func (a *app) perform(ctx context.Context, metricsAddr string) error {
	p, err := vmc.DialPerformer(a.cfg.Performer.Addr, vmc.WithLogger(a.log))
	if err != nil {
		return err
	}
	defer p.Close()

	g, ctx := errgroup.WithContext(ctx)
	m, serve := a.serveMetrics(ctx, metricsAddr)
	g.Go(serve)
	g.Go(func() error {
		return a.performLoop(ctx, p, m)
	})
	return g.Wait()
}

func (a *app) performLoop(ctx context.Context, p *vmc.Performer, m *metrics.Metrics) error {
	a.log.Info().
		Str("addr", a.cfg.Performer.Addr).
		Int("rate", a.cfg.Performer.Rate).
		Msg("performing")

	ticker := time.NewTicker(a.cfg.Performer.Interval())
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			frame := demoFrame(now.Sub(start))
			err := p.SendBundle(ctx, frame...)
			m.ObserveSend(err, frame...)
			if ctx.Err() != nil {
				return nil
			}
			var ioErr *vmc.IOError
			if errors.As(err, &ioErr) {
				// A marionette that isn't listening yet is not fatal.
				a.log.Warn().Err(err).Msg("frame dropped")
				continue
			}
			if err != nil {
				return err
			}
		}
	}
}

// demoFrame returns one frame of a looping idle animation at offset t.
func demoFrame(t time.Duration) []vmc.Message {
	s := t.Seconds()
	sway := float32(0.1 * math.Sin(s))
	nod := float32(0.05 * math.Sin(2*s))

	blink := float32(0)
	if math.Mod(s, 4) < 0.15 {
		blink = 1
	}

	return []vmc.Message{
		vmc.RootTransform{Rotation: vmc.IdentityQuat},
		vmc.BoneTransform{Bone: vmc.BoneHips, Position: vmc.Vec3{Y: 1}, Rotation: axisAngleY(sway)},
		vmc.BoneTransform{Bone: vmc.BoneSpine, Rotation: axisAngleY(-sway / 2)},
		vmc.BoneTransform{Bone: vmc.BoneHead, Rotation: axisAngleX(nod)},
		vmc.BlendShape{Name: vmc.BlendShapeBlink, Value: blink},
		vmc.ApplyBlendShapes{},
		vmc.State{Model: vmc.ModelLoaded},
		vmc.Time{Seconds: float32(s)},
	}
}

func axisAngleX(rad float32) vmc.Quat {
	h := float64(rad) / 2
	return vmc.Quat{X: float32(math.Sin(h)), W: float32(math.Cos(h))}
}

func axisAngleY(rad float32) vmc.Quat {
	h := float64(rad) / 2
	return vmc.Quat{Y: float32(math.Sin(h)), W: float32(math.Cos(h))}
}
