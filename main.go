package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cerfical/iptopo/internal/config"
	"github.com/cerfical/iptopo/internal/log"
	"github.com/cerfical/iptopo/internal/topo"
)

func main() {
	config := config.Load(os.Args)
	log := log.New(log.WithLevel(config.Log.Level))

	if config.Topology.File == "" {
		log.Fatal("No topology file specified")
	}

	loader := topo.NewLoader(
		topo.WithLogger(log.WithFields("topology_file", config.Topology.File)),
		topo.WithSymmetric(config.Topology.Symmetric),
	)

	net := topo.NewNetwork()
	report, err := loader.LoadFile(config.Topology.File, config.Topology.Format, net)
	if err != nil {
		log.Fatal("Failed to load the topology", "error", err)
	}
	if report.Skipped > 0 {
		log.Info("Some topology entries were skipped, see errors above", "skipped", report.Skipped)
	}
	log.Verbose("Built the network", "nodes", net.Len())

	if err := printAdjacency(os.Stdout, net); err != nil {
		log.Error("Failed to print the topology", "error", err)
		os.Exit(1)
	}
}

// printAdjacency writes one line per node, listing its neighbors in address order.
func printAdjacency(w io.Writer, net *topo.Network) error {
	out := bufio.NewWriter(w)
	for _, n := range net.Nodes() {
		neighbors := make([]string, 0, n.Neighbors().Len())
		for _, m := range n.Neighbors().Sorted() {
			neighbors = append(neighbors, m.String())
		}

		line := n.String()
		if len(neighbors) > 0 {
			line += " -> " + strings.Join(neighbors, ", ")
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errors.Join(err, out.Flush())
		}
	}
	return out.Flush()
}
