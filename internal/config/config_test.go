package config_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cerfical/iptopo/internal/config"
	"github.com/cerfical/iptopo/internal/log"
	"github.com/cerfical/iptopo/internal/topo"
	"github.com/stretchr/testify/suite"
)

func TestConfig(t *testing.T) {
	suite.Run(t, new(ConfigTest))
}

type ConfigTest struct {
	suite.Suite
}

func (t *ConfigTest) TestLoad() {
	flagTests := map[string]struct {
		arg  string
		want func(*config.Config)
	}{
		"topology-file": {
			arg: "topology.txt",
			want: func(c *config.Config) {
				t.Equal("topology.txt", c.Topology.File)
			},
		},

		"topology-format": {
			arg: "yaml",
			want: func(c *config.Config) {
				t.Equal(topo.FormatYAML, c.Topology.Format)
			},
		},

		"topology-symmetric": {
			arg: "true",
			want: func(c *config.Config) {
				t.True(c.Topology.Symmetric)
			},
		},

		"log-level": {
			arg: "verbose",
			want: func(c *config.Config) {
				t.Equal(log.LevelVerbose, c.Log.Level)
			},
		},
	}

	for flagName, test := range flagTests {
		t.Run(fmt.Sprintf("supports %s flag", flagName), func() {
			config := config.Load([]string{"", fmt.Sprintf("--%s=%s", flagName, test.arg)})
			test.want(config)
		})
	}

	t.Run("provides defaults", func() {
		config := config.Load([]string{"iptopo"})

		t.Equal(topo.FormatAuto, config.Topology.Format)
		t.False(config.Topology.Symmetric)
		t.Equal(log.LevelInfo, config.Log.Level)
	})

	t.Run("reads options from a configuration file", func() {
		path := filepath.Join(t.T().TempDir(), "iptopo.yaml")
		t.Require().NoError(os.WriteFile(path, []byte(
			"topology:\n"+
				"  file: network.yaml\n"+
				"  format: yaml\n"+
				"  symmetric: true\n"+
				"log:\n"+
				"  level: error\n",
		), 0o600))

		config := config.Load([]string{"iptopo", "--config-file", path})

		t.Equal("network.yaml", config.Topology.File)
		t.Equal(topo.FormatYAML, config.Topology.Format)
		t.True(config.Topology.Symmetric)
		t.Equal(log.LevelError, config.Log.Level)
	})

	t.Run("flags take precedence over the configuration file", func() {
		path := filepath.Join(t.T().TempDir(), "iptopo.yaml")
		t.Require().NoError(os.WriteFile(path, []byte("log:\n  level: error\n"), 0o600))

		config := config.Load([]string{"iptopo", "--config-file", path, "--log-level", "silent"})

		t.Equal(log.LevelSilent, config.Log.Level)
	})
}
