package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docver",
	Short: "Versioned documentation gateway",
	Long: `Docver builds and serves versioned documentation sites. It renders
markdown sources into per-version HTML snapshots, publishes a version
manifest, and injects a version selector and an outdated-version banner
into every served page.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".docver.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
