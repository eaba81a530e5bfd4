package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vasalvit/pathgen"
	"github.com/vasalvit/pathgen/internal/config"
	"github.com/vasalvit/pathgen/internal/log"
)

const defaultConfigFile = ".pathgen.yaml"

type rootOptions struct {
	fs      afero.Fs
	v       *viper.Viper
	cfgFile string
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	o := &rootOptions{fs: fs, v: viper.New()}
	o.v.SetFs(fs)

	cmd := &cobra.Command{
		Use:   "pathgen",
		Short: "Generate Go drawing accessors for vector icons",
		Long: `pathgen reads SVG and Android vector drawable files and writes one Go
source file per icon. Each file declares a method on the group type that
returns the icon's drawing operations, built once on first use.`,
		SilenceUsage: true,
		RunE:         o.run,
	}

	cmd.PersistentFlags().StringVarP(&o.cfgFile, "config", "c", "",
		"config file (default: "+defaultConfigFile+" when present)")

	f := cmd.Flags()
	f.StringP("input", "i", "", "directory holding the icon sources")
	f.StringP("output", "o", "", "module root the generated packages are written under")
	f.String("module", "", "import path of the module at --output")
	f.StringP("package", "p", "", "import path of the generated package")
	f.StringP("group", "g", "", "exported type the accessors are methods of")
	f.String("mode", "", "accessor flavour: paths or icon")
	f.IntP("workers", "j", 0, "icons processed concurrently")
	f.String("trim-prefix", "", "file name prefix removed before naming an icon")
	f.StringSlice("include", nil, "only generate icons matching these name patterns")
	f.StringSlice("exclude", nil, "skip icons matching these name patterns")
	f.Bool("check", false, "report out of date files instead of writing them")

	for key, flag := range map[string]string{
		"input":       "input",
		"output":      "output",
		"module":      "module",
		"package":     "package",
		"group":       "group",
		"mode":        "mode",
		"workers":     "workers",
		"trim_prefix": "trim-prefix",
		"include":     "include",
		"exclude":     "exclude",
		"check":       "check",
	} {
		_ = o.v.BindPFlag(key, f.Lookup(flag))
	}

	cmd.AddCommand(newInitCmd(o))
	return cmd
}

// loadConfig merges defaults, the config file, PATHGEN_* variables and
// flags, in increasing priority.
func (o *rootOptions) loadConfig() (config.Config, error) {
	defaults := config.Defaults()
	o.v.SetDefault("input", defaults.Input)
	o.v.SetDefault("output", defaults.Output)
	o.v.SetDefault("mode", defaults.Mode)
	o.v.SetDefault("workers", defaults.Workers)

	o.v.SetEnvPrefix("PATHGEN")
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	file := o.cfgFile
	if file == "" {
		if ok, _ := afero.Exists(o.fs, defaultConfigFile); ok {
			file = defaultConfigFile
		}
	}
	if file != "" {
		o.v.SetConfigFile(file)
		if err := o.v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("reading %s: %w", file, err)
		}
	}

	var cfg config.Config
	if err := o.v.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func (o *rootOptions) run(cmd *cobra.Command, _ []string) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}
	logger, err := log.New(cmd.ErrOrStderr(), env.LogLevel, env.LogFormat)
	if err != nil {
		return err
	}

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if o.v.ConfigFileUsed() != "" {
		logger.Debug("config loaded", "file", o.v.ConfigFileUsed())
	}

	mode, _ := pathgen.ParseMode(cfg.Mode)
	pred, _ := pathgen.NameFilter(cfg.Include, cfg.Exclude)

	icons, err := pathgen.DiscoverIcons(o.fs, cfg.Input, cfg.TrimPrefix)
	if err != nil {
		return fmt.Errorf("reading icons: %w", err)
	}

	var (
		writer pathgen.Writer = pathgen.DirWriter{Fs: o.fs, Root: cfg.Output, Module: cfg.Module}
		check  *pathgen.CheckWriter
	)
	if cfg.Check {
		check = &pathgen.CheckWriter{Fs: o.fs, Root: cfg.Output, Module: cfg.Module}
		writer = check
	}

	b := &pathgen.Batch{
		Parser:  pathgen.SVGParser{Fs: o.fs},
		Writer:  writer,
		Mode:    mode,
		Workers: cfg.Workers,
		Logger:  logger,
	}
	ids, err := b.Generate(icons, cfg.Scope(), pred)

	out := cmd.OutOrStdout()
	if check != nil {
		for _, file := range check.Stale() {
			fmt.Fprintf(out, "--- %s\n%s", file, check.Diff(file))
		}
	} else {
		fmt.Fprintf(out, "generated %d accessor(s) in %s\n", len(ids), cfg.Package)
	}

	var berr *pathgen.BatchError
	if errors.As(err, &berr) {
		for _, f := range berr.Failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", f)
		}
		return fmt.Errorf("%d of %d icon(s) failed", len(berr.Failures), len(ids)+len(berr.Failures))
	}
	if err != nil {
		return err
	}
	if check != nil {
		return check.Err()
	}
	return nil
}

func newInitCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(o.fs, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

