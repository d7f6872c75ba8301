package main

import (
	"path/filepath"

	"github.com/jacksmith/slnstart/internal/logging"
	"github.com/jacksmith/slnstart/internal/ops"
	"github.com/jacksmith/slnstart/internal/workspace"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <snapshot>",
	Short: "Make the active project of a workspace snapshot the startup project",
	Long: `Read a workspace snapshot written by an editor integration and make its
active project the startup project of its solution.

The command does nothing if the solution, any project or any open document
in the snapshot has unsaved changes. A relative solution path is resolved
against the snapshot file's directory.

Snapshot format:
  solution: {path: App.sln, dirty: false}
  projects:
    - {name: Api, path: Api/Api.csproj, dirty: false}
  documents:
    - {path: Api/Program.cs, saved: true}
  active: {name: Api, full_path: Api/Api.csproj}

Examples:
  slnstart apply workspace.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

var applyStrategy string

func init() {
	applyCmd.Flags().StringVar(&applyStrategy, "strategy", "", "designation strategy: first-project (default) or section")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	sf, err := workspace.LoadSnapshot(args[0])
	if err != nil {
		return err
	}
	snapshot := sf.Snapshot
	if !filepath.IsAbs(snapshot.Solution.Path) {
		snapshot.Solution.Path = filepath.Join(filepath.Dir(args[0]), snapshot.Solution.Path)
	}

	cfg, err := loadConfig(snapshot.Solution.Path)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	w, err := newWriter(cfg, applyStrategy, logger)
	if err != nil {
		return err
	}

	result, err := ops.SetStartup(ops.Request{
		Snapshot: snapshot,
		Active:   sf.Active,
		Writer:   w,
		Observer: logging.GuardObserver(logger),
	})
	if err != nil {
		return err
	}

	printUpdate(snapshot.Solution.Path, result.Project, result.Previous, result.Changed)
	return nil
}
