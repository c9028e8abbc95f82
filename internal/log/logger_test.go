package log_test

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/cerfical/iptopo/internal/log"
	"github.com/stretchr/testify/suite"
)

func TestLogger(t *testing.T) {
	suite.Run(t, new(LoggerTest))
}

type LoggerTest struct {
	suite.Suite
}

func (t *LoggerTest) TestLog() {
	levels := []log.Level{
		log.LevelVerbose,
		log.LevelInfo,
		log.LevelError,
	}

	for _, level := range levels {
		t.Run(fmt.Sprintf("%[1]v is logged if log level is %[1]v or higher", level), func() {
			got := encodeLog(level, level)

			t.Contains(got, "log message")
			t.Regexp(regexp.MustCompile("error(.*)description"), got)
		})

		t.Run(fmt.Sprintf("%v is not logged if log level is lower", level), func() {
			got := encodeLog(level-1, level)
			t.Equal("", got)
		})
	}

	t.Run("silent is never logged", func() {
		got := encodeLog(log.LevelSilent, log.LevelError)
		t.Equal("", got)
	})
}

func (t *LoggerTest) TestWithFields() {
	t.Run("attaches fields to every message", func() {
		var buf bytes.Buffer
		l := log.New(log.WithWriter(&buf)).
			WithFields("source", "topology.txt")

		l.Info("first")
		l.Info("second")

		t.Equal(2, bytes.Count(buf.Bytes(), []byte(`"source":"topology.txt"`)))
	})

	t.Run("leaves the parent logger unchanged", func() {
		var buf bytes.Buffer
		l := log.New(log.WithWriter(&buf))
		_ = l.WithFields("source", "topology.txt")

		l.Info("message")
		t.NotContains(buf.String(), "source")
	})
}

func (t *LoggerTest) TestDiscard() {
	t.Run("accepts messages of any level", func() {
		t.NotPanics(func() {
			log.Discard.Error("message", "error", errors.New("description"))
			log.Discard.Info("message")
			log.Discard.Verbose("message")
		})
	})
}

func encodeLog(logLevel, msgLevel log.Level) string {
	var buf bytes.Buffer
	l := log.New(log.WithLevel(logLevel), log.WithWriter(&buf))

	switch msgLevel {
	case log.LevelError:
		l.Error("log message", "error", errors.New("description"))
	case log.LevelInfo:
		l.WithFields("error", "description").
			Info("log message")
	case log.LevelVerbose:
		l.Verbose("log message", "error", "description")
	}

	return buf.String()
}
