// Package logging routes the library's diagnostics to an optional
// caller-supplied sink. Without a sink, logging is silently disabled —
// a TUI owns the terminal, so nothing may write to stdout/stderr
// behind its back.
package logging

import "sync"

// Logger is the leveled sink the host application may provide.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

var (
	mu      sync.RWMutex
	current Logger = nopLogger{}
)

// SetLogger installs the sink used by the whole library. Passing nil
// restores the silent default.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		current = nopLogger{}
		return
	}
	current = l
}

func active() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Debugf logs at debug level through the installed sink.
func Debugf(format string, args ...interface{}) { active().Debugf(format, args...) }

// Infof logs at info level through the installed sink.
func Infof(format string, args ...interface{}) { active().Infof(format, args...) }

// Warnf logs at warn level through the installed sink.
func Warnf(format string, args ...interface{}) { active().Warnf(format, args...) }

// Errorf logs at error level through the installed sink.
func Errorf(format string, args ...interface{}) { active().Errorf(format, args...) }
