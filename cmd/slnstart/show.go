package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/slnstart/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <solution>",
	Short: "List the projects of a solution and its startup project",
	Long: `List every project of a solution with its GUID and path. The startup
project is marked with '*'. Solution folders are listed but can never be
the startup project.

Examples:
  slnstart show App.sln
  slnstart show App.sln --strategy first-project`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showStrategy string

func init() {
	showCmd.Flags().StringVar(&showStrategy, "strategy", "", "designation strategy: first-project (default) or section")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args[0])
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	w, err := newWriter(cfg, showStrategy, logger)
	if err != nil {
		return err
	}

	sol, err := w.Inspect(args[0])
	if err != nil {
		return err
	}

	if len(sol.Projects) == 0 {
		fmt.Println("No projects.")
		return nil
	}

	startup := sol.StartupProject(w.Strategy())
	table := cli.NewTable()
	for _, p := range sol.Projects {
		switch {
		case p.IsFolder():
			table.AddRow("", cli.Gray(p.Name), cli.Gray(p.GUIDString()), cli.Gray("(folder)"))
		case startup != nil && p.GUID == startup.GUID:
			table.AddRow("*", cli.Green(p.Name), p.GUIDString(), p.Path)
		default:
			table.AddRow("", p.Name, p.GUIDString(), p.Path)
		}
	}
	table.Render(os.Stdout)

	if startup == nil {
		fmt.Println(cli.Yellow("No startup project designated."))
	}
	return nil
}
