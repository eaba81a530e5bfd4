package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vasalvit/pathgen"
)

func valid() Config {
	c := Defaults()
	c.Module = "example.com/icons"
	c.Package = "example.com/icons/filled"
	c.Group = "Filled"
	return c
}

func TestDefaults(t *testing.T) {
	c := Defaults()
	require.Equal(t, "icons", c.Input)
	require.Equal(t, "paths", c.Mode)
	require.Equal(t, 1, c.Workers)
	require.False(t, c.Check)
}

func TestValidate(t *testing.T) {
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"no module", func(c *Config) { c.Module = "" }, "module path is required"},
		{"no input", func(c *Config) { c.Input = "" }, "input directory is required"},
		{"unexported group", func(c *Config) { c.Group = "filled" }, "exported"},
		{"bad mode", func(c *Config) { c.Mode = "kotlin" }, "unknown mode"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "workers must not be negative"},
		{"bad pattern", func(c *Config) { c.Exclude = []string{"["} }, "bad name pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(&c)
			err := c.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateScopeError(t *testing.T) {
	c := valid()
	c.Package = ""
	require.ErrorIs(t, c.Validate(), pathgen.ErrInvalidScope)
}

func TestWriteDefault(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteDefault(fs, "/proj/.pathgen/config.yaml"))

	data, err := afero.ReadFile(fs, "/proj/.pathgen/config.yaml")
	require.NoError(t, err)
	require.Contains(t, string(data), "input: icons")
	require.Contains(t, string(data), "trim_prefix: \"\"")

	var c Config
	require.NoError(t, yaml.Unmarshal(data, &c))
	require.Equal(t, Defaults(), c)

	require.Error(t, WriteDefault(fs, "/proj/.pathgen/config.yaml"), "existing config is not overwritten")
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PATHGEN_LOG_LEVEL", "debug")

	e, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, "debug", e.LogLevel)
	require.Equal(t, "text", e.LogFormat)
}
