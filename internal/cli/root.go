// Package cli implements the relq command line: listing and running the
// exercise catalog and inspecting the fixture tables.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leengari/relq/internal/config"
	"github.com/leengari/relq/internal/fixture"
	"github.com/leengari/relq/internal/logging"
)

var (
	// Version information (set by build)
	Version = "dev"
	Commit  = "unknown"
)

// app is the state shared by all commands of one invocation
type app struct {
	configPath string
	v          *viper.Viper
	cfg        *config.Config
	logger     *slog.Logger
	closeLog   func()
	closed     bool
}

// NewRootCommand builds the relq command tree
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

func newRootCommand() (*cobra.Command, *app) {
	a := &app{v: config.New(), closeLog: func() {}}

	rootCmd := &cobra.Command{
		Use:           "relq",
		Short:         "Relational operators over the school dataset",
		Long:          "relq runs the student/teacher/course/score exercise catalog on an in-memory relational engine",
		Version:       fmt.Sprintf("%s (commit: %s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file (default ./relq.yaml if present)")
	flags.String("source", string(fixture.SourceEmbedded), "Fixture source: embedded, dir or sqlite")
	flags.String("dir", "", "Dataset directory for --source dir")
	flags.String("dsn", "", "SQLite data source for --source sqlite")
	flags.String("as-of", "", "Reference date for ages (YYYY-MM-DD, default today)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")

	bindings := map[string]string{
		"fixture.source": "source",
		"fixture.dir":    "dir",
		"fixture.dsn":    "dsn",
		"as_of":          "as-of",
		"log_level":      "log-level",
	}
	for key, flag := range bindings {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newRunCommand(a))
	rootCmd.AddCommand(newShowCommand(a))
	rootCmd.AddCommand(newSeedCommand(a))

	return rootCmd, a
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd, a := newRootCommand()
	if err := execute(cmd, a); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs cmd and flushes the log sinks whether or not it failed
func execute(cmd *cobra.Command, a *app) error {
	defer a.close()
	return cmd.Execute()
}

// close flushes and releases the log sinks once
func (a *app) close() {
	if a.closed {
		return
	}
	a.closed = true
	a.closeLog()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := cfg.LoggingOptions()
	opts.Output = cmd.ErrOrStderr()
	a.logger, a.closeLog = logging.SetupLogger(opts)
	slog.SetDefault(a.logger)
	return nil
}

// loadDataset opens the configured fixture source
func (a *app) loadDataset(ctx context.Context) (*fixture.Dataset, error) {
	return fixture.Open(ctx, a.cfg.FixtureOptions(), a.logger)
}

// asOf is the reference date exercises compute ages against
func (a *app) asOf() time.Time {
	return a.cfg.AsOfDate(time.Now())
}
