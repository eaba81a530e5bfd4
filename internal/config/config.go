// Package config holds the generator settings read from the config
// file, flags and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/vasalvit/pathgen"
)

// Config is the settings of one generator run.
type Config struct {
	// Input is the directory holding the icon sources.
	Input string `mapstructure:"input" yaml:"input"`
	// Output is the module root the generated packages are written under.
	Output string `mapstructure:"output" yaml:"output"`
	// Module is the import path of the module at Output.
	Module string `mapstructure:"module" yaml:"module"`
	// Package is the import path of the generated package.
	Package string `mapstructure:"package" yaml:"package"`
	// Group is the exported type the accessors are methods of.
	Group      string   `mapstructure:"group" yaml:"group"`
	Mode       string   `mapstructure:"mode" yaml:"mode"`
	Workers    int      `mapstructure:"workers" yaml:"workers"`
	TrimPrefix string   `mapstructure:"trim_prefix" yaml:"trim_prefix"`
	Include    []string `mapstructure:"include" yaml:"include,omitempty"`
	Exclude    []string `mapstructure:"exclude" yaml:"exclude,omitempty"`
	// Check compares instead of writing.
	Check bool `mapstructure:"check" yaml:"check"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		Input:   "icons",
		Output:  ".",
		Mode:    pathgen.ModePaths.String(),
		Workers: 1,
	}
}

// Scope returns the generation target described by c.
func (c Config) Scope() pathgen.Scope {
	return pathgen.Scope{Group: c.Group, Package: c.Package}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input directory is required"))
	}
	if c.Module == "" {
		errs = append(errs, errors.New("module path is required"))
	}
	if err := c.Scope().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := pathgen.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if _, err := pathgen.NameFilter(c.Include, c.Exclude); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// WriteDefault writes the default settings as YAML to path, creating
// its directory. An existing file is left alone.
func WriteDefault(fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("config file %s already exists", path)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Defaults()); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
