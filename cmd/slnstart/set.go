package main

import (
	"github.com/jacksmith/slnstart/internal/logging"
	"github.com/jacksmith/slnstart/internal/ops"
	"github.com/jacksmith/slnstart/internal/workspace"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <solution> <project>",
	Short: "Set the startup project of a solution",
	Long: `Designate a project as the startup project of a solution file.

The project may be given by name (case-insensitive when unambiguous) or by
its {GUID}. By default the project's entry is moved to the top of the
solution, which is where Visual Studio looks for the startup project. The
entries themselves are kept byte for byte.

With --snapshot, the workspace snapshot is checked first and nothing is
written if it has unsaved changes (unless require_clean is false).

Examples:
  slnstart set App.sln Api
  slnstart set App.sln Api --snapshot workspace.yaml
  slnstart set App.sln Api --strategy section`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var (
	setSnapshot string
	setStrategy string
)

func init() {
	setCmd.Flags().StringVar(&setSnapshot, "snapshot", "", "workspace snapshot file to check for unsaved changes")
	setCmd.Flags().StringVar(&setStrategy, "strategy", "", "designation strategy: first-project (default) or section")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	solution, project := args[0], args[1]

	cfg, err := loadConfig(solution)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Without a snapshot to check, the workspace is taken as clean.
	var snapshot workspace.Snapshot
	if setSnapshot != "" && cfg.RequireClean {
		sf, err := workspace.LoadSnapshot(setSnapshot)
		if err != nil {
			return err
		}
		snapshot = sf.Snapshot
	}
	snapshot.Solution.Path = solution

	w, err := newWriter(cfg, setStrategy, logger)
	if err != nil {
		return err
	}

	result, err := ops.SetStartup(ops.Request{
		Snapshot: snapshot,
		Active:   &workspace.ActiveProject{Name: project},
		Writer:   w,
		Observer: logging.GuardObserver(logger),
	})
	if err != nil {
		return err
	}

	printUpdate(solution, result.Project, result.Previous, result.Changed)
	return nil
}
