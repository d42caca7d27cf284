package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden via ldflags in release builds.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the docver build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("docver", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
