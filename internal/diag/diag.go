// Package diag wraps zap for the non-fatal diagnostics the decoder and
// encoder emit along the way: unknown map keys, non-string keys, and
// MessagePack values that needed a lenient type conversion. None of these
// stop decoding; they are observations a caller can opt into.
package diag

import "go.uber.org/zap"

// Logger is the diagnostic sink used by envelope and structure decoding.
// The zero value is valid and silently discards everything, matching the
// library's default of not emitting output unless a caller asks for it.
type Logger struct {
	z *zap.Logger
}

// New wraps an existing zap logger.
func New(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

// Noop returns a Logger that discards everything, used when a caller does
// not supply one via WithLogger.
func Noop() *Logger {
	return &Logger{}
}

func (l *Logger) warn(msg string, fields ...zap.Field) {
	if l == nil || l.z == nil {
		return
	}

	l.z.Warn(msg, fields...)
}

// UnknownKey warns that a map key had no entry in the field dispatcher's
// policy table.
func (l *Logger) UnknownKey(key string) {
	l.warn("mmtf: unknown key", zap.String("key", key))
}

// NonStringKey warns that a MessagePack map contained a non-string key,
// which is skipped rather than decoded.
func (l *Logger) NonStringKey() {
	l.warn("mmtf: skipping non-string map key")
}

// TypeCoerced warns that a field's MessagePack type needed a lenient
// conversion to satisfy its declared family.
func (l *Logger) TypeCoerced(key, wanted, got string) {
	l.warn("mmtf: coerced field type", zap.String("key", key), zap.String("wanted", wanted), zap.String("got", got))
}
