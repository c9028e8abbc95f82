package topo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/cerfical/iptopo/internal/addr"
	"gopkg.in/yaml.v3"
)

func NewLoader(ops ...LoaderOption) *Loader {
	defaults := []LoaderOption{
		WithLogger(DiscardLogger),
	}

	var l Loader
	for _, op := range slices.Concat(defaults, ops) {
		op(&l)
	}
	return &l
}

func WithLogger(log Logger) LoaderOption {
	return func(l *Loader) {
		l.log = log
	}
}

// WithSymmetric makes every loaded link bidirectional.
func WithSymmetric(symmetric bool) LoaderOption {
	return func(l *Loader) {
		l.symmetric = symmetric
	}
}

type LoaderOption func(*Loader)

// Report summarizes a single load.
type Report struct {
	// Loaded is the number of entries added to the network.
	Loaded int

	// Skipped is the number of entries rejected because of malformed addresses.
	Skipped int
}

// Loader reads topologies into a [Network].
//
// Entries with malformed addresses are reported to the logger and skipped as a whole.
type Loader struct {
	log       Logger
	symmetric bool
}

// LoadFile reads a topology from the file at path.
func (l *Loader) LoadFile(path string, format Format, net *Network) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == FormatAuto {
		format = FormatFor(path)
	}
	return l.Load(f, format, net)
}

// Load reads a topology from r. [FormatAuto] is treated as [FormatText].
func (l *Loader) Load(r io.Reader, format Format, net *Network) (*Report, error) {
	var (
		report *Report
		err    error
	)
	switch format {
	case FormatAuto, FormatText:
		report, err = l.loadText(r, net)
	case FormatYAML:
		report, err = l.loadYAML(r, net)
	default:
		return nil, fmt.Errorf("load topology: unsupported format %d", int(format))
	}
	if err != nil {
		return nil, err
	}

	l.log.Info("Loaded the topology",
		"format", format,
		"loaded", report.Loaded,
		"skipped", report.Skipped,
	)
	return report, nil
}

func (l *Loader) loadText(r io.Reader, net *Network) (*Report, error) {
	var report Report

	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)
	for line := 1; s.Scan(); line++ {
		text, _, _ := strings.Cut(s.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if err := l.addEntry(net, fields[0], fields[1:]); err != nil {
			l.log.Error("Skipping topology entry", "line", line, "error", err)
			report.Skipped++
			continue
		}
		report.Loaded++
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read topology: %w", err)
	}
	return &report, nil
}

// maxLineSize limits the length of a single adjacency list in a text topology.
const maxLineSize = 16 << 20

type yamlTopology struct {
	// Entries are decoded one by one, so that a malformed entry does not fail the whole document
	Nodes map[string]yaml.Node `yaml:"nodes"`
}

func (l *Loader) loadYAML(r io.Reader, net *Network) (*Report, error) {
	var topology yamlTopology
	if err := yaml.NewDecoder(r).Decode(&topology); err != nil {
		// An empty document describes an empty topology
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode topology: %w", err)
		}
	}

	var report Report
	for _, node := range slices.Sorted(maps.Keys(topology.Nodes)) {
		var neighbors []string
		value := topology.Nodes[node]
		if err := value.Decode(&neighbors); err != nil {
			l.log.Error("Skipping topology entry", "node", node, "error", err)
			report.Skipped++
			continue
		}

		if err := l.addEntry(net, node, neighbors); err != nil {
			l.log.Error("Skipping topology entry", "node", node, "error", err)
			report.Skipped++
			continue
		}
		report.Loaded++
	}
	return &report, nil
}

// addEntry adds a node with its neighbors, leaving the network unchanged if any of the addresses is invalid.
func (l *Loader) addEntry(net *Network, node string, neighbors []string) error {
	from, err := addr.ParseIPv4(node)
	if err != nil {
		return err
	}

	to := make([]addr.IPv4, 0, len(neighbors))
	for _, n := range neighbors {
		ip, err := addr.ParseIPv4(n)
		if err != nil {
			return err
		}
		to = append(to, ip)
	}

	net.Add(from)
	for _, ip := range to {
		if l.symmetric {
			net.Connect(from, ip)
		} else {
			net.Link(from, ip)
		}
	}
	return nil
}
