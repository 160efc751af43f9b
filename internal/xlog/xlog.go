// Package xlog provides the structured lifecycle logging used around
// parameter-context transitions and error paths. Hot arithmetic loops in
// fb/eb/pb never log; only the params package does.
//
// The contextual child-logger shape (Module(name) returning a logger with
// an added field) generalizes the pattern in
// wyf-ACCEPT-eth2030/pkg/log/log.go onto zerolog, the structured-logging
// dependency actually present with a go.mod entry in this pack.
package xlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with a fixed "module" field.
type Logger struct {
	inner zerolog.Logger
}

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// Module returns a logger tagged with the given subsystem name, e.g.
// "params", "dv".
func Module(name string) *Logger {
	return &Logger{inner: base.With().Str("module", name).Logger()}
}

// SetLevel adjusts the process-wide base logger's minimum level.
func SetLevel(lvl zerolog.Level) {
	base = base.Level(lvl)
}

// Info logs an informational lifecycle event.
func (l *Logger) Info(msg string, kv ...interface{}) {
	l.event(l.inner.Info(), msg, kv)
}

// Error logs an error-path event; err may be nil.
func (l *Logger) Error(msg string, err error, kv ...interface{}) {
	ev := l.inner.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	l.event(ev, msg, kv)
}

func (l *Logger) event(ev *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
