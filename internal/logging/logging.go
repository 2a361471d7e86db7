// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the lvdet command.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported values of Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatLogfmt  = "logfmt"
)

// ErrUnknownFormat is returned for a Config.Format outside the supported set.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config is used to provide dependencies to New.
type Config struct {
	// Level is a zap level name ("debug", "info", "warn", "error"). Empty means
	// info.
	Level string

	// Format is one of "console", "json" or "logfmt". Empty means console.
	Format string

	// Writer is the sink for encoded log records. Nil means os.Stderr.
	Writer io.Writer
}

// New creates a logger from c.
func New(c Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.Level != "" {
		l, err := zapcore.ParseLevel(c.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", c.Level)
		}
		level = l
	}

	encoder, err := newEncoder(c.Format)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, writeSyncer(c.Writer), zap.NewAtomicLevelAt(level))

	return zap.New(core).Named("lvdet"), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(format) {
	case "", FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(encoderConfig), nil
	case FormatLogfmt:
		return zaplogfmt.NewEncoder(encoderConfig), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
}

func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	if w == nil {
		w = os.Stderr
	}
	switch t := w.(type) {
	case *os.File:
		return zapcore.Lock(t)
	case zapcore.WriteSyncer:
		return t
	default:
		return zapcore.AddSync(w)
	}
}
