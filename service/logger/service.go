// Package logger builds the process-wide logr.Logger backed by zap.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar selects the log verbosity: error, warn, info, debug or trace
const EnvVar = "ENI_DOCTOR_LOG"

// TraceLevel is logr's V(2); at this level SDK request/response traces are on
const TraceLevel = zapcore.Level(-2)

// Options is the parsed verbosity setting
type Options struct {
	Level zapcore.Level
	// Trace enables AWS SDK wire logging
	Trace bool
}

// ParseLevel parses a verbosity name. An empty value means info.
func ParseLevel(value string) (Options, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "info":
		return Options{Level: zapcore.InfoLevel}, nil
	case "error":
		return Options{Level: zapcore.ErrorLevel}, nil
	case "warn", "warning":
		return Options{Level: zapcore.WarnLevel}, nil
	case "debug":
		return Options{Level: zapcore.DebugLevel}, nil
	case "trace":
		return Options{Level: TraceLevel, Trace: true}, nil
	default:
		return Options{}, fmt.Errorf("invalid %s value %q: want error, warn, info, debug or trace", EnvVar, value)
	}
}

// FromEnv builds a stderr logger at the verbosity named by ENI_DOCTOR_LOG
func FromEnv() (logr.Logger, Options, error) {
	opts, err := ParseLevel(os.Getenv(EnvVar))
	if err != nil {
		return logr.Discard(), Options{}, err
	}
	return New(os.Stderr, opts), opts, nil
}

// New builds a console logger writing to w
func New(w io.Writer, opts Options) logr.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(opts.Level),
	)

	return zapr.NewLogger(zap.New(core)).WithName("eni-doctor")
}
