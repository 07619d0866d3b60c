// Package tracelog wraps zap for the shift/reduce engine's optional
// reduction tracing. A nil *Logger is valid and costs only a nil check,
// matching the teacher's nil-safe-by-convention style.
package tracelog

import "go.uber.org/zap"

// Logger is a thin wrapper around *zap.Logger scoped to engine tracing.
type Logger struct {
	z *zap.Logger
}

// New wraps an existing zap logger.
func New(z *zap.Logger) *Logger {
	if z == nil {
		return nil
	}
	return &Logger{z: z.Named("engine")}
}

// Development builds a human-readable logger suitable for local
// debugging, mirroring zap.NewDevelopment's common use in the example
// pack.
func Development() *Logger {
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil
	}
	return New(z)
}

// Shift records a token being pushed onto the shift/reduce stack.
func (l *Logger) Shift(shape string, code string) {
	if l == nil {
		return
	}
	l.z.Debug("shift", zap.String("shape", shape), zap.String("pushed", code))
}

// Reduce records a pattern firing, the matched tail, and the resulting
// shape.
func (l *Logger) Reduce(pattern, matched, resultShape string) {
	if l == nil {
		return
	}
	l.z.Debug("reduce",
		zap.String("pattern", pattern),
		zap.String("matched", matched),
		zap.String("result_shape", resultShape))
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.z.Sync()
}
