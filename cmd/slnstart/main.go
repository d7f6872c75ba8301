// Package main is the entry point for the slnstart CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/slnstart/internal/cli"
	"github.com/jacksmith/slnstart/internal/logging"
	"github.com/jacksmith/slnstart/internal/sln"
	"github.com/jacksmith/slnstart/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slnstart",
	Short: "slnstart - set the startup project of a Visual Studio solution",
	Long: `slnstart designates a project as the startup project of a solution and
writes that choice into the .sln file, so it survives reloads.

It refuses to touch the solution while the workspace described by a
snapshot has unsaved changes, and it never leaves a half-written file:
the solution is replaced atomically or not at all.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	flagVerbose bool
	flagConfig  string
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("slnstart version {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every check and write at debug level")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: "+storage.ConfigFile+" next to the solution)")
}

// loadConfig loads the config that applies to the given solution.
func loadConfig(solutionPath string) (*storage.Config, error) {
	path := flagConfig
	if path == "" {
		path = storage.ConfigPathFor(solutionPath)
	}
	return storage.LoadConfig(path)
}

// newLogger builds the logger for a command run. --verbose overrides the
// configured level.
func newLogger(cfg *storage.Config) (*zap.Logger, error) {
	if flagVerbose {
		return logging.NewVerbose(), nil
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return logger, nil
}

// newWriter builds a solution writer. A non-empty strategy flag overrides
// the configured strategy.
func newWriter(cfg *storage.Config, strategy string, logger *zap.Logger) (*sln.Writer, error) {
	name := cfg.Strategy
	if strategy != "" {
		name = strategy
	}
	st, err := sln.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return sln.NewWriter(sln.WithStrategy(st), sln.WithLogger(logger)), nil
}

// printUpdate reports the outcome of a startup project change.
func printUpdate(solution, project, previous string, changed bool) {
	if !changed {
		fmt.Printf("%s is already the startup project of %s\n", project, solution)
		return
	}
	if previous != "" {
		fmt.Printf("Startup project of %s: %s -> %s\n", solution, previous, cli.Green(project))
		return
	}
	fmt.Printf("Startup project of %s: %s\n", solution, cli.Green(project))
}
