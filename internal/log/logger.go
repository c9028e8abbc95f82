package log

import (
	"io"
	"os"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Discard drops all messages written to it.
var Discard = New(WithLevel(LevelSilent), WithWriter(io.Discard))

func New(ops ...Option) *Logger {
	defaults := []Option{
		WithWriter(os.Stderr),
		WithLevel(LevelInfo),
	}

	l := Logger{zerolog.New(nil).
		With().Timestamp().Logger(),
	}
	for _, op := range slices.Concat(defaults, ops) {
		op(&l)
	}
	return &l
}

func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.log = l.log.Level(makeZerologLevel(level))
	}
}

func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		out := w
		if isTerminal(w) {
			out = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
				w.TimeFormat = time.DateTime
				w.Out = out
			})
		}
		l.log = l.log.Output(out)
	}
}

// WithFields attaches key-value pairs to every message of the logger.
func WithFields(fields ...any) Option {
	return func(l *Logger) {
		l.log = l.log.With().Fields(fields).Logger()
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return true
	}
	return false
}

type Option func(*Logger)

type Logger struct {
	log zerolog.Logger
}

// WithFields creates a child logger that attaches key-value pairs to every message.
func (l *Logger) WithFields(fields ...any) *Logger {
	child := *l
	WithFields(fields...)(&child)
	return &child
}

func (l *Logger) Fatal(msg string, fields ...any) {
	l.logEntry(LevelFatal, msg, fields)
	os.Exit(1)
}

func (l *Logger) Error(msg string, fields ...any) {
	l.logEntry(LevelError, msg, fields)
}

func (l *Logger) Info(msg string, fields ...any) {
	l.logEntry(LevelInfo, msg, fields)
}

// Verbose logs a message that is only of interest when troubleshooting.
func (l *Logger) Verbose(msg string, fields ...any) {
	l.logEntry(LevelVerbose, msg, fields)
}

func (l *Logger) logEntry(level Level, msg string, fields []any) {
	l.log.WithLevel(makeZerologLevel(level)).
		Fields(fields).
		Msg(msg)
}
