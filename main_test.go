package main

import (
	"bytes"
	"testing"

	"github.com/cerfical/iptopo/internal/addr"
	"github.com/cerfical/iptopo/internal/topo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintAdjacency(t *testing.T) {
	t.Run("lists nodes and neighbors in address order", func(t *testing.T) {
		net := topo.NewNetwork()
		net.Link(addr.MustParseIPv4("10.0.0.10"), addr.MustParseIPv4("10.0.0.9"))
		net.Link(addr.MustParseIPv4("10.0.0.10"), addr.MustParseIPv4("10.0.0.2"))
		net.Link(addr.MustParseIPv4("10.0.0.2"), addr.MustParseIPv4("10.0.0.10"))

		var buf bytes.Buffer
		require.NoError(t, printAdjacency(&buf, net))

		want := "10.0.0.2 -> 10.0.0.10\n" +
			"10.0.0.9\n" +
			"10.0.0.10 -> 10.0.0.2, 10.0.0.9\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("prints nothing for an empty network", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printAdjacency(&buf, topo.NewNetwork()))
		assert.Empty(t, buf.String())
	})
}
