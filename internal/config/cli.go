package config

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/VitiminV/bstdict/internal/datastruct/tree"
	"github.com/urfave/cli/v3"
)

const configFilename = "bstdict.toml"

// Request holds the per-run inputs that never come from a config file.
type Request struct {
	DataPath string
	Search   []string
	Delete   []string
	Drain    bool
}

func CreateCommand(
	runFunc func(ctx context.Context, configPath string, cfg *Config, req *Request) error,
	version string,
) *cli.Command {
	cmd := &cli.Command{
		Name:        "bstdict",
		Usage:       "load key/value pairs into an ordered dictionary and query it",
		Description: "Ordered dictionary backed by a binary search tree",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name: "cache-size",
				Usage: `
				Number of search results kept in the LRU lookup cache. 0 disables the
				cache. (default: 0, max: 65535)`,
				OnlyOnce:  true,
				Validator: checkUint16,
			},

			&cli.BoolFlag{
				Name: "clean",
				Usage: `
				if set, all configuration files will be ignored`,
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `
				Custom location of the config file to load. Options given through the command
				line flags will override the options set in this file.`,
				OnlyOnce: true,
				Sources:  cli.EnvVars("BSTDICT_CONFIG"),
			},

			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage: `
				Path of the TOML dataset to load.`,
				OnlyOnce: true,
			},

			&cli.StringSliceFlag{
				Name: "delete",
				Usage: `
				Key to delete after loading. Can be given multiple times.`,
			},

			&cli.BoolFlag{
				Name: "drain",
				Usage: `
				If set, entries are removed from the dictionary while they are printed.`,
				OnlyOnce: true,
			},

			&cli.StringFlag{
				Name: "duplicates",
				Usage: fmt.Sprintf(`
				What to do when a key is inserted twice. One of %v (default: "replace")`,
					[]string{"replace", "ignore", "reject"}),
				OnlyOnce:  true,
				Validator: checkDuplicatePolicy,
			},

			&cli.StringFlag{
				Name: "format",
				Usage: fmt.Sprintf(`
				Output format. One of %v (default: "table")`, availableOutputFormats),
				OnlyOnce:  true,
				Validator: checkOutputFormat,
			},

			&cli.StringFlag{
				Name: "log-level",
				Usage: `
				Set log level (default: 'info')`,
				OnlyOnce:  true,
				Validator: checkLogLevel,
			},

			&cli.BoolFlag{
				Name: "metrics",
				Usage: `
				If set, operation counters are printed after the entries.`,
				OnlyOnce: true,
			},

			&cli.StringSliceFlag{
				Name: "search",
				Usage: `
				Key to look up after loading. Can be given multiple times.`,
			},

			&cli.BoolFlag{
				Name: "silent",
				Usage: `
				Do not print the banner and the summary line`,
				OnlyOnce: true,
			},

			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage: `
				Print version; this may contain some other relevant information`,
				OnlyOnce: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("version") {
				fmt.Fprintf(cmd.Root().Writer, "bstdict %s\n", version)
				return nil
			}

			var tomlCfg *Config
			var configPath string
			if !cmd.Bool("clean") {
				configDirs := []string{
					path.Join(string(os.PathSeparator), "etc", configFilename),
					path.Join(os.Getenv("XDG_CONFIG_HOME"), "bstdict", configFilename),
					path.Join(os.Getenv("HOME"), ".config", "bstdict", configFilename),
				}

				p, err := findConfigFileToLoad(cmd.String("config"), configDirs)
				if err != nil {
					return err
				}

				if p != "" {
					configPath = p
					tomlCfg, err = parseTomlConfig(p)
					if err != nil {
						return fmt.Errorf("error parsing toml config: %w", err)
					}
				}
			}

			argsCfg, err := parseConfigFromArgs(cmd)
			if err != nil {
				return fmt.Errorf("error parsing config from args: %w", err)
			}

			finalCfg := NewConfig().Merge(tomlCfg).Merge(argsCfg)

			req := &Request{
				DataPath: cmd.String("data"),
				Search:   cmd.StringSlice("search"),
				Delete:   cmd.StringSlice("delete"),
				Drain:    cmd.Bool("drain"),
			}

			if req.DataPath == "" {
				return fmt.Errorf("missing required flag --data")
			}

			return runFunc(ctx, configPath, finalCfg, req)
		},
	}

	return cmd
}

// parseConfigFromArgs only fills the values that were given explicitly, so
// that merging keeps file values for everything else.
func parseConfigFromArgs(cmd *cli.Command) (*Config, error) {
	cfg := &Config{
		General:    &GeneralOptions{},
		Dictionary: &DictionaryOptions{},
		Output:     &OutputOptions{},
	}

	if cmd.IsSet("log-level") {
		cfg.General.LogLevel = valueOf(MustParseLogLevel(cmd.String("log-level")))
	}

	if cmd.IsSet("silent") {
		cfg.General.Silent = valueOf(cmd.Bool("silent"))
	}

	if cmd.IsSet("duplicates") {
		p, err := tree.ParseDuplicatePolicy(cmd.String("duplicates"))
		if err != nil {
			return nil, err
		}
		cfg.Dictionary.Duplicates = valueOf(p)
	}

	if cmd.IsSet("cache-size") {
		cfg.Dictionary.CacheSize = valueOf(uint16(cmd.Int("cache-size")))
	}

	if cmd.IsSet("format") {
		cfg.Output.Format = valueOf(MustParseOutputFormatType(cmd.String("format")))
	}

	if cmd.IsSet("metrics") {
		cfg.Output.Metrics = valueOf(cmd.Bool("metrics"))
	}

	return cfg, nil
}
