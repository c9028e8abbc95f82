package topo_test

import (
	"testing"

	"github.com/cerfical/iptopo/internal/topo"
	"github.com/stretchr/testify/suite"
)

func TestFormat(t *testing.T) {
	suite.Run(t, new(FormatTest))
}

type FormatTest struct {
	suite.Suite
}

func (t *FormatTest) TestUnmarshalText() {
	t.Run("decodes a valid format name", func() {
		var got topo.Format
		t.Require().NoError(got.UnmarshalText([]byte("yaml")))

		t.Equal(topo.FormatYAML, got)
	})

	t.Run("ignores character case", func() {
		var got topo.Format
		t.Require().NoError(got.UnmarshalText([]byte("Text")))

		t.Equal(topo.FormatText, got)
	})

	t.Run("rejects invalid format names", func() {
		var got topo.Format
		t.Require().Error(got.UnmarshalText([]byte("json")))
	})
}

func (t *FormatTest) TestMarshalText() {
	t.Run("encodes a valid format name", func() {
		got, err := topo.FormatAuto.MarshalText()
		t.Require().NoError(err)

		t.Equal([]byte("auto"), got)
	})

	t.Run("panics on an invalid format", func() {
		t.Panics(func() {
			f := topo.Format(-1)
			f.MarshalText()
		})
	})
}

func (t *FormatTest) TestFormatFor() {
	tests := map[string]topo.Format{
		"topology.yaml": topo.FormatYAML,
		"topology.YML":  topo.FormatYAML,
		"topology.txt":  topo.FormatText,
		"topology":      topo.FormatText,
	}

	for path, want := range tests {
		t.Run(path, func() {
			t.Equal(want, topo.FormatFor(path))
		})
	}
}
