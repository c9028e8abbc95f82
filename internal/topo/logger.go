package topo

// DiscardLogger ignores all messages.
var DiscardLogger Logger = discardLogger{}

// Logger receives reports about topology entries that could not be loaded.
type Logger interface {
	Error(msg string, fields ...any)
	Info(msg string, fields ...any)
}

type discardLogger struct{}

func (l discardLogger) Error(msg string, fields ...any) {}

func (l discardLogger) Info(msg string, fields ...any) {}
