package log

import "go.uber.org/zap"

// Logger is the leveled, structured logger used across the client.
// Implementations must be safe for concurrent use.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Fatal(msg string, keysAndValues ...interface{})
}

// ZapLogger adapts a zap.Logger to the Logger interface.
type ZapLogger struct {
	inner *zap.SugaredLogger
}

func NewZapLogger(log *zap.Logger) ZapLogger {
	return ZapLogger{inner: log.Sugar()}
}

func (l ZapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.inner.Debugw(msg, keysAndValues...)
}

func (l ZapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.inner.Infow(msg, keysAndValues...)
}

func (l ZapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.inner.Warnw(msg, keysAndValues...)
}

func (l ZapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.inner.Errorw(msg, keysAndValues...)
}

func (l ZapLogger) Fatal(msg string, keysAndValues ...interface{}) {
	l.inner.Fatalw(msg, keysAndValues...)
}
