package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the version manifest",
	Long: `Loads the version manifest (from manifest_url or the built site) and
checks it: required fields, unique version paths, and a single entry
marked latest. An ambiguous latest flag is reported as a warning, since
pages are still served without the badge and banner.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		m, err := manifestSource(cfg).Load(context.Background())
		if err != nil {
			return fmt.Errorf("manifest check failed: %w", err)
		}

		fmt.Printf("Manifest OK: %d versions, default %q\n", len(m.Versions), m.Default)
		for _, e := range m.Versions {
			marker := " "
			if e.Latest {
				marker = "*"
			}
			fmt.Printf("  %s %-10s %s\n", marker, e.Path, e.Title)
		}

		if _, err := m.Latest(); err != nil {
			fmt.Printf("Warning: %v — the badge and banner will be suppressed\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
