package log

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// Levels are ordered from the quietest to the noisiest, so that a message is
// written when its level does not exceed the level of the logger.
const (
	// LevelSilent keeps the adjacency listing on stdout as the only output.
	LevelSilent Level = iota

	// LevelFatal reports only failures that stop the tool, such as an unreadable topology file.
	LevelFatal

	// LevelError also reports topology entries skipped because of malformed addresses.
	LevelError

	// LevelInfo also reports per-load summaries.
	LevelInfo

	// LevelVerbose also reports details useful when debugging a topology, e.g. the resulting network size.
	LevelVerbose
)

// Verbose messages map to zerolog's debug level, so they stay hidden at [LevelInfo].
var levels = []levelDesc{
	{"silent", zerolog.Disabled},
	{"fatal", zerolog.FatalLevel},
	{"error", zerolog.ErrorLevel},
	{"info", zerolog.InfoLevel},
	{"verbose", zerolog.DebugLevel},
}

type levelDesc struct {
	text  string
	level zerolog.Level
}

// Level sets how much the tool reports about loading a topology.
// It is configured with the log.level option or the --log-level flag.
type Level int8

func (l Level) String() string {
	text, err := l.MarshalText()
	if err != nil {
		return ""
	}
	return string(text)
}

func (l Level) MarshalText() ([]byte, error) {
	if l < LevelSilent || l > LevelVerbose {
		return nil, errors.New("unknown log level")
	}
	return []byte(levels[l].text), nil
}

// UnmarshalText accepts level names in any case, as they come from flags and config files alike.
func (l *Level) UnmarshalText(text []byte) error {
	name := string(bytes.ToLower(text))
	i := slices.IndexFunc(levels, func(d levelDesc) bool {
		return d.text == name
	})
	if i == -1 {
		return fmt.Errorf("unknown log level %q", text)
	}

	*l = Level(i)
	return nil
}

func makeZerologLevel(l Level) zerolog.Level {
	if l < LevelSilent || l > LevelVerbose {
		panic("unknown log level")
	}
	return levels[l].level
}
