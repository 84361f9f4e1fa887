// Package logging builds the zap loggers used by the CLI and the HTTP
// server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/renumber/sequence"
)

// Config mirrors the logger section of the configuration file.
type Config struct {
	Level        string
	Mode         string // "development" or "production"
	Encoding     string // "console" or "json"
	ColorEnabled bool

	// Writer receives log output. Defaults to os.Stderr so that stdout
	// stays reserved for results.
	Writer io.Writer
}

// New builds a logger from cfg.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = l
	}

	var encCfg zapcore.EncoderConfig
	var opts []zap.Option
	if strings.EqualFold(cfg.Mode, "development") {
		encCfg = zap.NewDevelopmentEncoderConfig()
		opts = append(opts, zap.Development(), zap.AddCaller())
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	var enc zapcore.Encoder
	switch strings.ToLower(cfg.Encoding) {
	case "", "console":
		if cfg.ColorEnabled {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log encoding %q", cfg.Encoding)
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core, opts...), nil
}

// Warnings logs each classification warning at warn level.
func Warnings(logger *zap.Logger, warnings []sequence.Warning) {
	for _, w := range warnings {
		logger.Warn("line not renumbered cleanly",
			zap.Int("line", w.Line),
			zap.String("kind", w.Kind.String()),
			zap.String("text", w.Text),
		)
	}
}
