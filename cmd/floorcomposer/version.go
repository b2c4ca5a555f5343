package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/floorcomposer/floorcomposer/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of floorcomposer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("floorcomposer v%s\n", version.Version)
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
