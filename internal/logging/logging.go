// Package logging configures zerolog for the vmc command.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a console logger writing to w at the given level and installs
// it as the global logger.
func New(w io.Writer, level string, noColor bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	logger := zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "vmc").Logger()
	log.Logger = logger
	return logger, nil
}

// Stderr is New writing to os.Stderr.
func Stderr(level string, noColor bool) (zerolog.Logger, error) {
	return New(os.Stderr, level, noColor)
}

// ParseLevel parses a level name. The empty string is info.
func ParseLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, nil
	case "diagnostics":
		return zerolog.TraceLevel, nil
	case "off", "disabled":
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log level %q", raw)
	}
	return lvl, nil
}
