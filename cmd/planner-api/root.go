package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:          "planner-api",
	Short:        "AHP workforce planner API service",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
}
