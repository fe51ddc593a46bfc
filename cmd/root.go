package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/timvw/tmuxify/internal/config"
	"github.com/timvw/tmuxify/internal/env"
	telem "github.com/timvw/tmuxify/internal/otel"
	"github.com/timvw/tmuxify/internal/ui"
)

var (
	// Global flags.
	flagDryRun        bool
	flagForce         bool
	flagProject       string
	flagTmuxpLocation string
	flagSession       string
	flagStartDir      string
	flagVerbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "tmuxify",
	Short: "Generate a tmuxp session and .envrc for a project directory",
	Long: `tmuxify asks a few questions about the windows and panes you want and
writes two files: a tmuxp session description and a direnv .envrc that
loads it. Entering the project directory then attaches the session.

Run 'tmuxify doctor' to check that tmux, tmuxp and direnv are set up.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runWizard,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported *ui.ReportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "print what would be written instead of writing")
	rootCmd.PersistentFlags().BoolVar(&flagForce, "force", false, "overwrite existing files without a backup")
	rootCmd.PersistentFlags().StringVar(&flagProject, "project", "", "project directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&flagTmuxpLocation, "tmuxp-location", "", "where to store the tmuxp file: home, project (default: ask)")
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "", "session name (default: ask)")
	rootCmd.PersistentFlags().StringVar(&flagStartDir, "start-dir", "", "start_directory written to the session (default: project directory)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

// runtime holds what every command needs after config and telemetry are
// set up.
type runtime struct {
	env    env.Env
	cfg    *config.Config
	logger *log.Logger
	tel    *telem.Telemetry
	theme  ui.Theme
}

// setup loads configuration, builds the logger and starts telemetry.
// The returned runtime must be closed.
func setup(ctx context.Context) (*runtime, error) {
	e := env.OS()
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determining current directory: %w", err)
	}
	if flagProject != "" {
		cwd = flagProject
	}

	// Load configuration: defaults -> config file -> env vars.
	cfg, err := config.Load(e, cwd)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tmuxify"})
	logger.SetLevel(cfg.Level)
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	if cfg.ConfigFile != "" {
		logger.Debug("config loaded", "path", cfg.ConfigFile)
	}

	// Wire build version into OTEL service metadata
	telem.Version = Version

	// Initialize OTEL (no-op if no endpoint configured)
	tel, err := telem.Init(ctx, telem.Config{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		logger.Warn("otel init failed", "err", err)
	}

	return &runtime{
		env:    e,
		cfg:    cfg,
		logger: logger,
		tel:    tel,
		theme:  ui.ThemeByName(cfg.Theme),
	}, nil
}

func (r *runtime) close(ctx context.Context) {
	r.tel.Shutdown(ctx)
}

func (r *runtime) metrics() *telem.Metrics {
	if r.tel == nil {
		return nil
	}
	return r.tel.Metrics
}
