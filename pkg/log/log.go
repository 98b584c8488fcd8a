// Package log provides structured logging for lstsqr built on rs/zerolog.
//
// The package exposes a small key/value Logger facade so that library
// packages can emit structured events without depending on zerolog's
// chained API directly:
//
//	logger := log.GetLoggerWithName("regression").With(
//	    log.ModelNameKey, "LeastSquares",
//	)
//	logger.Info("Training completed",
//	    log.SamplesKey, n,
//	    log.DurationMsKey, elapsed.Milliseconds(),
//	)
//
// Applications configure the global level and output once at startup via
// SetupLogger. The default logger writes to stderr at info level.
package log

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Shared structured-logging keys.
const (
	ComponentKey  = "component"
	ModelNameKey  = "model"
	OperationKey  = "operation"
	PhaseKey      = "phase"
	StrategyKey   = "strategy"
	SamplesKey    = "samples"
	WorkersKey    = "workers"
	DurationMsKey = "duration_ms"
)

// Values for OperationKey and PhaseKey.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationMeasure = "measure"

	PhaseTraining  = "training"
	PhaseInference = "inference"
)

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

// SetupLogger configures the global logger with a console writer and the
// given level ("debug", "info", "warn", "error"). Unknown levels fall back
// to info.
func SetupLogger(level string) {
	lvl := zerolog.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "info":
		lvl = zerolog.InfoLevel
	case "warn", "warning":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr}

	mu.Lock()
	global = zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
	mu.Unlock()
}

// GetLogger returns the global zerolog logger for callers that want the
// full chained API.
func GetLogger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := global
	return &l
}

// LogError logs err at error level with the given message.
func LogError(err error, msg string) {
	GetLogger().Error().Err(err).Msg(msg)
}

// Logger is a key/value structured logging facade. Keys must be strings;
// a trailing key without a value is ignored.
type Logger interface {
	With(kv ...any) Logger
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// GetLoggerWithName returns a Logger scoped to the named component.
func GetLoggerWithName(name string) Logger {
	zl := GetLogger().With().Str(ComponentKey, name).Logger()
	return &kvLogger{zl: zl}
}

type kvLogger struct {
	zl zerolog.Logger
}

func (l *kvLogger) With(kv ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, kv[i+1])
	}
	return &kvLogger{zl: ctx.Logger()}
}

func (l *kvLogger) Debug(msg string, kv ...any) { l.emit(l.zl.Debug(), msg, kv) }
func (l *kvLogger) Info(msg string, kv ...any)  { l.emit(l.zl.Info(), msg, kv) }
func (l *kvLogger) Warn(msg string, kv ...any)  { l.emit(l.zl.Warn(), msg, kv) }
func (l *kvLogger) Error(msg string, kv ...any) { l.emit(l.zl.Error(), msg, kv) }

func (l *kvLogger) emit(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
