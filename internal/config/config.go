package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cerfical/iptopo/internal/log"
	"github.com/cerfical/iptopo/internal/topo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	defTopologyFormat = topo.FormatAuto
	defLogLevel       = log.LevelInfo
)

func Load(args []string) *Config {
	progName := getProgramName(args)

	flags := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Printf("Usage:\n")
		fmt.Printf("  %v [options]\n\n", progName)
		fmt.Printf("Options:\n")
		flags.PrintDefaults()
	}
	if err := parseFlags(flags, args); err != nil {
		printErrorAndExit(flags, err)
	}

	rawConfig, err := parseRawConfig(flags)
	if err != nil {
		printErrorAndExit(flags, err)
	}
	return rawConfig.ToConfig()
}

func printErrorAndExit(f *pflag.FlagSet, err error) {
	fmt.Printf("Error: %v\n\n", err)
	f.Usage()
	os.Exit(1)
}

func parseRawConfig(f *pflag.FlagSet) (*rawConfig, error) {
	v := viper.New()

	// Bind command-line flags to their corresponding values from config file
	configNames := []string{"topology.file", "topology.format", "topology.symmetric", "log.level"}
	for _, name := range configNames {
		kebabCasedName := strings.ReplaceAll(name, ".", "-")
		if err := v.BindPFlag(name, f.Lookup(kebabCasedName)); err != nil {
			panic(fmt.Errorf("bind flag: %w", err))
		}
	}

	v.SetConfigFile(f.Lookup("config-file").Value.String())
	if err := v.ReadInConfig(); err != nil {
		// Make the configuration file optional
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}

	options := []viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()),

		func(c *mapstructure.DecoderConfig) {
			c.IgnoreUntaggedFields = true
		},
	}

	var config rawConfig
	if err := v.UnmarshalExact(&config, options...); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return &config, nil
}

func parseFlags(f *pflag.FlagSet, args []string) error {
	// Flags shared with options from a configuration file
	f.String("topology-file", "", "``file to read the network topology from")

	format := formatValue(defTopologyFormat)
	f.Var(&format, "topology-format", "``syntax of the topology file: auto, text or yaml")
	f.Bool("topology-symmetric", false, "``link every pair of adjacent nodes in both directions")

	logLevel := logLevelValue(defLogLevel)
	f.Var(&logLevel, "log-level", "``severity level of logging messages")

	help := f.Bool("help", false, "``display help message")
	f.String("config-file", "", "``configuration file")

	if err := f.Parse(args[1:]); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *help {
		f.Usage()
		os.Exit(2)
	}
	return nil
}

func getProgramName(args []string) string {
	progPath := args[0]
	return strings.TrimSuffix(
		filepath.Base(progPath),
		filepath.Ext(progPath),
	)
}

type Config struct {
	Topology struct {
		File      string
		Format    topo.Format
		Symmetric bool
	}

	Log struct {
		Level log.Level
	}
}

type rawConfig struct {
	Topology struct {
		File      string      `mapstructure:"file"`
		Format    formatValue `mapstructure:"format"`
		Symmetric bool        `mapstructure:"symmetric"`
	} `mapstructure:"topology"`

	Log struct {
		Level logLevelValue `mapstructure:"level"`
	} `mapstructure:"log"`
}

func (c *rawConfig) ToConfig() *Config {
	var config Config

	config.Topology.File = c.Topology.File
	config.Topology.Format = topo.Format(c.Topology.Format)
	config.Topology.Symmetric = c.Topology.Symmetric
	config.Log.Level = log.Level(c.Log.Level)

	return &config
}

type formatValue topo.Format

func (v *formatValue) Set(s string) error {
	return (*topo.Format)(v).UnmarshalText([]byte(s))
}

func (v *formatValue) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func (v *formatValue) String() string {
	return topo.Format(*v).String()
}

func (v *formatValue) Type() string {
	return ""
}

type logLevelValue log.Level

func (v *logLevelValue) Set(s string) error {
	return (*log.Level)(v).UnmarshalText([]byte(s))
}

func (v *logLevelValue) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func (v *logLevelValue) String() string {
	return (*log.Level)(v).String()
}

func (v *logLevelValue) Type() string {
	return ""
}
