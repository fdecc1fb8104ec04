package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ahpgap/workforce-planner/internal/cli"
)

func main() {
	command := NewPlannerCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewPlannerCtlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planner [flags] [options]",
		Short: "planner projects the India allied health workforce gap offline.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdScenarios())
	cmd.AddCommand(cli.NewCmdCosts())
	cmd.AddCommand(cli.NewCmdDataset())
	cmd.AddCommand(cli.NewCmdNarrative())
	cmd.AddCommand(cli.NewCmdInfo())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
