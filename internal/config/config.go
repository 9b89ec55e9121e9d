// Package config loads the TOML configuration of the vmc command.
package config

import (
	"net"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/chabad360/go-vmc/osc"
	"github.com/chabad360/go-vmc/vmc"
)

// EnvLogLevel overrides the configured log level.
const EnvLogLevel = "VMC_LOG_LEVEL"

// Config is the complete configuration of the vmc command.
type Config struct {
	Performer  PerformerConfig  `toml:"performer"`
	Marionette MarionetteConfig `toml:"marionette"`
	Log        LogConfig        `toml:"log"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Decoder    DecoderConfig    `toml:"decoder"`
}

// PerformerConfig configures the sending side.
type PerformerConfig struct {
	// Addr is the UDP address datagrams are sent to.
	Addr string `toml:"addr"`
	// Rate is the number of frames sent per second by "vmc perform".
	Rate int `toml:"rate"`
}

// MarionetteConfig configures the receiving side.
type MarionetteConfig struct {
	// Addr is the UDP address to listen on.
	Addr            string `toml:"addr"`
	MaxDatagramSize int    `toml:"max_datagram_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level   string `toml:"level"`
	NoColor bool   `toml:"no_color"`
}

// MetricsConfig configures the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr      string `toml:"addr"`
	Namespace string `toml:"namespace"`
}

// DecoderConfig configures OSC decoding.
type DecoderConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Performer:  PerformerConfig{Addr: vmc.DefaultAddr, Rate: 60},
		Marionette: MarionetteConfig{Addr: vmc.DefaultAddr, MaxDatagramSize: vmc.DefaultMaxDatagramSize},
		Log:        LogConfig{Level: "info"},
		Metrics:    MetricsConfig{Namespace: "vmc"},
		Decoder:    DecoderConfig{MaxDepth: osc.DefaultMaxDepth},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults. The environment is applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, errors.Wrap(err, "load config")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.Errorf("load config: unknown key %q", undecoded[0].String())
		}
	}

	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.Log.Level = lvl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the command can't use.
func (c Config) Validate() error {
	if err := validateAddr("performer.addr", c.Performer.Addr); err != nil {
		return err
	}
	if err := validateAddr("marionette.addr", c.Marionette.Addr); err != nil {
		return err
	}
	if c.Metrics.Addr != "" {
		if err := validateAddr("metrics.addr", c.Metrics.Addr); err != nil {
			return err
		}
	}
	if c.Performer.Rate <= 0 || c.Performer.Rate > 1000 {
		return errors.Errorf("performer.rate: %d out of range (1-1000)", c.Performer.Rate)
	}
	if c.Marionette.MaxDatagramSize < 16 || c.Marionette.MaxDatagramSize > vmc.DefaultMaxDatagramSize {
		return errors.Errorf("marionette.max_datagram_size: %d out of range (16-%d)",
			c.Marionette.MaxDatagramSize, vmc.DefaultMaxDatagramSize)
	}
	if c.Decoder.MaxDepth < 1 {
		return errors.Errorf("decoder.max_depth: %d must be positive", c.Decoder.MaxDepth)
	}
	return nil
}

// Interval returns the time between two frames of "vmc perform".
func (c PerformerConfig) Interval() time.Duration {
	return time.Second / time.Duration(c.Rate)
}

func validateAddr(key, addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return errors.Wrapf(err, "%s", key)
	}
	return nil
}
