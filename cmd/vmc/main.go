package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/chabad360/go-vmc/internal/config"
	"github.com/chabad360/go-vmc/internal/logging"
	"github.com/chabad360/go-vmc/internal/metrics"
	"github.com/chabad360/go-vmc/osc"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

// app is the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg config.Config
	log zerolog.Logger
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("no-color") {
		cfg.Log.NoColor = a.noColor
	}
	logger, err := logging.Stderr(cfg.Log.Level, cfg.Log.NoColor)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger
	return nil
}

func (a *app) decoder() osc.Decoder {
	return osc.Decoder{MaxDepth: a.cfg.Decoder.MaxDepth}
}

// serveMetrics registers the collectors and, when addr is set, serves them
// until ctx is done.
func (a *app) serveMetrics(ctx context.Context, addr string) (*metrics.Metrics, func() error) {
	reg := prometheus.NewRegistry()
	m := metrics.New(metrics.Config{Namespace: a.cfg.Metrics.Namespace, Registry: reg})
	if addr == "" {
		return m, func() error { return nil }
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	return m, func() error {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.log.Debug().Err(err).Msg("metrics server shutdown")
			}
		}()
		a.log.Info().Str("addr", addr).Msg("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "metrics server")
		}
		return nil
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "vmc",
		Short: "Send, receive and record Virtual Motion Capture traffic",
		Long: `vmc speaks the Virtual Motion Capture protocol over UDP.

It can act as a performer streaming a test pose, as a marionette
logging what it receives, and it can record a session to a capture
file for later inspection or replay.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to a TOML config file")
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored log output")

	rootCmd.AddCommand(
		performCmd(a),
		monitorCmd(a),
		recordCmd(a),
		dumpCmd(a),
		replayCmd(a),
		catalogCmd(),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vmc %s (%s)\n", version, commit)
		},
	}
}
