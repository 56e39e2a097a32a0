package logger

import (
	"io"
	"os"
	"strings"

	"github.com/samvad-hq/beer-inventory-client/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package-level logger to be used across packages after Init.
var S *zap.SugaredLogger

// Logger is the object-logging surface shared by the app and the client.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

// Init initializes a zap SugaredLogger using settings from config. Logs go to
// stderr so rendered results on stdout stay machine readable.
func Init(cfg *config.Config) (*zap.SugaredLogger, error) {
	sugar := New(cfg.LogLevel, zapcore.Lock(os.Stderr))
	S = sugar
	return sugar, nil
}

// New builds a JSON SugaredLogger writing to w at the named level.
func New(levelName string, w io.Writer) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(w),
		parseLevel(levelName),
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger.Sugar()
}

func parseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Close flushes any buffered loggers.
func Close() error {
	if S == nil {
		return nil
	}
	return S.Sync()
}

// ZapLogger adapts a SugaredLogger to Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps sugar; a nil sugar falls back to the package logger at call time.
func NewZapLogger(sugar *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{sugar: sugar}
}

func (z *ZapLogger) base() *zap.Logger {
	if z != nil && z.sugar != nil {
		return z.sugar.Desugar()
	}
	if S != nil {
		return S.Desugar()
	}
	return nil
}

func (z *ZapLogger) InfoObj(msg, key string, obj interface{}) {
	if l := z.base(); l != nil {
		l.Info(msg, zap.Any(key, obj))
	}
}

func (z *ZapLogger) DebugObj(msg, key string, obj interface{}) {
	if l := z.base(); l != nil {
		l.Debug(msg, zap.Any(key, obj))
	}
}

func (z *ZapLogger) WarnObj(msg, key string, obj interface{}) {
	if l := z.base(); l != nil {
		l.Warn(msg, zap.Any(key, obj))
	}
}

func (z *ZapLogger) ErrorObj(msg, key string, obj interface{}) {
	if l := z.base(); l != nil {
		l.Error(msg, zap.Any(key, obj))
	}
}

// NopLogger discards everything.
type NopLogger struct{}

func (*NopLogger) InfoObj(string, string, interface{})  {}
func (*NopLogger) DebugObj(string, string, interface{}) {}
func (*NopLogger) WarnObj(string, string, interface{})  {}
func (*NopLogger) ErrorObj(string, string, interface{}) {}

// Minimal object logging helpers -------------------------------------------------
// These log the given object as a structured field named `key` on the package logger.
func InfoObj(msg, key string, obj interface{}) {
	(*ZapLogger)(nil).InfoObj(msg, key, obj)
}

func DebugObj(msg, key string, obj interface{}) {
	(*ZapLogger)(nil).DebugObj(msg, key, obj)
}

func WarnObj(msg, key string, obj interface{}) {
	(*ZapLogger)(nil).WarnObj(msg, key, obj)
}

func ErrorObj(msg, key string, obj interface{}) {
	(*ZapLogger)(nil).ErrorObj(msg, key, obj)
}
