package topo

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// FormatAuto chooses a format from the file name extension.
	FormatAuto Format = iota

	// FormatText is a plain-text adjacency list, one node per line.
	FormatText

	// FormatYAML is a YAML document mapping nodes to their neighbors.
	FormatYAML
)

var formats = []string{
	FormatAuto: "auto",
	FormatText: "text",
	FormatYAML: "yaml",
}

func ParseFormat(format string) (Format, error) {
	i := slices.IndexFunc(formats, func(s string) bool {
		return strings.EqualFold(s, format)
	})
	if i == -1 {
		return 0, errors.New("unknown topology format")
	}
	return Format(i), nil
}

// FormatFor determines the format of a topology file by its name.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Format identifies the syntax of a topology source.
type Format int

func (f Format) String() string {
	if f >= FormatAuto && f <= FormatYAML {
		return formats[f]
	}
	panic("unknown topology format")
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	format, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = format
	return nil
}
