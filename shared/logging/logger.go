package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
)

type contextKey string

const (
	//TargetKey context key of the compilation target
	TargetKey contextKey = "target"
	//SourceKey context key of the compiled source location
	SourceKey contextKey = "source"
)

// Logger represents structured logger
type Logger interface {
	IsDebugEnabled() bool
	IsInfoEnabled() bool
	IsWarnEnabled() bool
	IsErrorEnabled() bool

	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	Debugc(ctx context.Context, msg string, args ...any)
	Infoc(ctx context.Context, msg string, args ...any)
	Warnc(ctx context.Context, msg string, args ...any)
	Errorc(ctx context.Context, msg string, args ...any)
}

type slogger struct {
	logger *slog.Logger
	level  slog.Level
	caller bool
}

// New creates a structured logger using the JSON Handler.
func New(level string, dest io.Writer) Logger {
	if dest == nil {
		dest = os.Stderr
	}
	logLevel := ParseLevel(level)
	handler := slog.NewJSONHandler(dest, &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Rename the time key to "timestamp"
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	})
	return &slogger{logger: slog.New(handler), level: logLevel, caller: logLevel <= slog.LevelDebug}
}

// Nop returns logger discarding all entries
func Nop() Logger {
	return &slogger{logger: slog.New(slog.NewJSONHandler(io.Discard, nil)), level: slog.LevelError + 1}
}

// ParseLevel returns slog level for supplied name, INFO is used for unknown names
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// WithValue returns context carrying a known logging value
func WithValue(ctx context.Context, key contextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func (s *slogger) IsDebugEnabled() bool {
	return s.level <= slog.LevelDebug
}

func (s *slogger) IsInfoEnabled() bool {
	return s.level <= slog.LevelInfo
}

func (s *slogger) IsWarnEnabled() bool {
	return s.level <= slog.LevelWarn
}

func (s *slogger) IsErrorEnabled() bool {
	return s.level <= slog.LevelError
}

// getCallerInfo uses runtime to get the caller's program counter
// and extract info from the stack frame to get the function name, etc.
func (s *slogger) getCallerInfo() []any {
	if !s.caller {
		return nil
	}
	callers := make([]uintptr, 1)
	count := runtime.Callers(4, callers[:]) // skip to actual caller
	if count == 0 {
		return nil
	}
	frame, _ := runtime.CallersFrames(callers).Next()
	return []any{"function", frame.Function, "file", frame.File, "line", frame.Line}
}

// getContextValues retrieves known logging values from the Context.
func (s *slogger) getContextValues(ctx context.Context) []any {
	var values []any
	for _, key := range []contextKey{TargetKey, SourceKey} {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			values = append(values, string(key), value)
		}
	}
	return values
}

func (s *slogger) log(ctx context.Context, level slog.Level, msg string, args []any) {
	if s.level > level {
		return
	}
	attrs := s.getCallerInfo()
	attrs = append(attrs, s.getContextValues(ctx)...)
	attrs = append(attrs, args...)
	s.logger.Log(ctx, level, msg, attrs...)
}

// Debug wraps a call to slog.Debug
func (s *slogger) Debug(msg string, args ...any) {
	s.log(context.Background(), slog.LevelDebug, msg, args)
}

// Info wraps a call to slog.Info
func (s *slogger) Info(msg string, args ...any) {
	s.log(context.Background(), slog.LevelInfo, msg, args)
}

// Warn wraps a call to slog.Warn
func (s *slogger) Warn(msg string, args ...any) {
	s.log(context.Background(), slog.LevelWarn, msg, args)
}

// Error wraps a call to slog.Error
func (s *slogger) Error(msg string, args ...any) {
	s.log(context.Background(), slog.LevelError, msg, args)
}

// Debugc wraps a call to slog.Debug, retrieving known values from the context object.
func (s *slogger) Debugc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelDebug, msg, args)
}

// Infoc wraps a call to slog.Info, retrieving known values from the context object.
func (s *slogger) Infoc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelInfo, msg, args)
}

// Warnc wraps a call to slog.Warn, retrieving known values from the context object.
func (s *slogger) Warnc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelWarn, msg, args)
}

// Errorc wraps a call to slog.Error, retrieving known values from the context object.
func (s *slogger) Errorc(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelError, msg, args)
}
