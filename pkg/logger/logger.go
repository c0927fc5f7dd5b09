// Package logger provides component-tagged structured logging backed by zap.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger = build(os.Stderr)
)

func build(w io.Writer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		EncodeLevel: zapcore.CapitalLevelEncoder,
		TimeKey:     "time",
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

func (l LogLevel) zap() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l LogLevel) String() string {
	return strings.ToLower(l.zap().String())
}

// ParseLevel maps "debug", "info", "warn" or "error" to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

func SetLevel(l LogLevel) {
	level.SetLevel(l.zap())
}

func GetLevel() LogLevel {
	switch level.Level() {
	case zapcore.DebugLevel:
		return DEBUG
	case zapcore.WarnLevel:
		return WARN
	case zapcore.ErrorLevel:
		return ERROR
	default:
		return INFO
	}
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = build(w)
}

func log(l LogLevel, component, msg string, fields map[string]any) {
	mu.RLock()
	lg := logger
	mu.RUnlock()

	zfields := make([]zap.Field, 0, len(fields)+1)
	if component != "" {
		zfields = append(zfields, zap.String("component", component))
	}
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}

	if ce := lg.Check(l.zap(), msg); ce != nil {
		ce.Write(zfields...)
	}
}

func DebugC(component, msg string) { log(DEBUG, component, msg, nil) }
func InfoC(component, msg string) { log(INFO, component, msg, nil) }
func WarnC(component, msg string) { log(WARN, component, msg, nil) }
func ErrorC(component, msg string) { log(ERROR, component, msg, nil) }

func DebugCF(component, msg string, fields map[string]any) { log(DEBUG, component, msg, fields) }
func InfoCF(component, msg string, fields map[string]any) { log(INFO, component, msg, fields) }
func WarnCF(component, msg string, fields map[string]any) { log(WARN, component, msg, fields) }
func ErrorCF(component, msg string, fields map[string]any) { log(ERROR, component, msg, fields) }
