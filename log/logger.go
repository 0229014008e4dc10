// Package log provides structured logging for pipeline runs.
//
// Every log entry carries the run identity (run_id) so that the output of a
// pipeline run can be correlated across steps and external command captures.
// The logger covers the two levels the pipeline emits: info for lifecycle
// progress and command captures, error for step failures.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides structured logging with run context.
// All entries include the run_id field.
type Logger struct {
	zap *zap.Logger
}

// NewLogger creates a logger with run context writing to os.Stderr.
func NewLogger(runID string) *Logger {
	return newLoggerWithWriter(runID, os.Stderr)
}

// NewFileLogger creates a logger that tees output to stderr and to the log
// file at path. The file is truncated on open: one log file, overwritten per
// run. The returned close function closes the file sink.
func NewFileLogger(runID, path string) (*Logger, func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %q: %w", path, err)
	}

	sink := zapcore.NewMultiWriteSyncer(
		zapcore.AddSync(os.Stderr),
		zapcore.AddSync(f),
	)
	logger := &Logger{zap: zap.New(newCore(sink)).With(contextFields(runID)...)}
	return logger, f.Close, nil
}

// WithOutput returns a new logger writing to a different output writer.
// Run context fields are preserved.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	core := newCore(zapcore.AddSync(w))
	return &Logger{zap: l.zap.WithOptions(zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }))}
}

// newLoggerWithWriter creates a logger writing to the specified writer.
func newLoggerWithWriter(runID string, w io.Writer) *Logger {
	zapLogger := zap.New(newCore(zapcore.AddSync(w))).With(contextFields(runID)...)
	return &Logger{zap: zapLogger}
}

func newCore(sink zapcore.WriteSyncer) zapcore.Core {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "timestamp",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeTime:  zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, zapcore.InfoLevel)
}

func contextFields(runID string) []zap.Field {
	return []zap.Field{zap.String("run_id", runID)}
}

// Info logs an info message.
func (l *Logger) Info(message string, fields map[string]any) {
	l.zap.Info(message, zap.Any("fields", fields))
}

// Error logs an error message.
func (l *Logger) Error(message string, fields map[string]any) {
	l.zap.Error(message, zap.Any("fields", fields))
}
