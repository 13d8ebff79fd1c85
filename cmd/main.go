package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/luca-patrignani/mu-rainbow/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the config is loaded.
type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rainbow",
		Short:         "Enumerate the reachable states of the rainbow card game",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "rainbow.yaml", "path of the YAML config file")
	flags.Int("ranks", 0, "ranks per suit (3-8), overrides the config")
	flags.String("output", "", "reachability map file, overrides the config")
	flags.String("backend", "", "storage backend: memory or mmap, overrides the config")
	flags.String("log-level", "", "trace, debug, info, warn or error, overrides the config")

	root.AddCommand(a.walkCmd(), a.inspectCmd(), a.tablesCmd())
	return root
}

// load reads the config file, applies flag overrides and sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return a.fail(err)
	}
	if err := applyFlags(cmd.Flags(), &cfg); err != nil {
		return a.fail(err)
	}
	if err := cfg.Validate(); err != nil {
		return a.fail(err)
	}
	a.cfg = cfg

	// Create a new slog handler on top of the PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(logLevel(cfg.LogLevel)))
	a.logger = slog.New(handler).With("run", uuid.NewString())
	return nil
}

// applyFlags copies every flag set on the command line over cfg.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	strs := map[string]*string{
		"output":           &cfg.Output,
		"backend":          &cfg.Backend,
		"log-level":        &cfg.LogLevel,
		"metrics-textfile": &cfg.MetricsTextfile,
		"seed":             &cfg.SampleSeed,
	}
	for name, dst := range strs {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return fmt.Errorf("failed to read flag --%s: %w", name, err)
		}
		*dst = v
	}
	ints := map[string]*int{
		"ranks":  &cfg.Ranks,
		"sample": &cfg.SampleSize,
	}
	for name, dst := range ints {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return fmt.Errorf("failed to read flag --%s: %w", name, err)
		}
		*dst = v
	}
	return nil
}

// fail prints err before handing it back to cobra, which is silenced.
func (a *app) fail(err error) error {
	pterm.Error.Println(err.Error())
	return err
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
