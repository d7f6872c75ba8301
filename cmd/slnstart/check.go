package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/slnstart/internal/cli"
	"github.com/jacksmith/slnstart/internal/ops"
	"github.com/jacksmith/slnstart/internal/workspace"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <snapshot>",
	Short: "Report unsaved changes in a workspace snapshot",
	Long: `List the solution, every project and every open document of a workspace
snapshot with its save state.

Exits with an error when anything is unsaved, so scripts can use it as a
precondition for 'slnstart set'.

Examples:
  slnstart check workspace.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	sf, err := workspace.LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	checks := workspace.Report(sf.Snapshot)
	table := cli.NewTable()
	for _, c := range checks {
		table.AddRow(string(c.Kind), c.Path, cli.CheckStatus(c))
	}
	table.Render(os.Stdout)

	if workspace.IsDirty(checks) {
		return &ops.DirtyWorkspaceError{Solution: sf.Solution.Path}
	}

	fmt.Println(cli.Green("Workspace is clean."))
	return nil
}
