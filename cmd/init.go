package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zentinel/docver/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .docver.yml interactively",
	Long: `Walks through the gateway settings (current version, base path,
directories, manifest source) and writes a .docver.yml in the current
directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
