package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/zentinel/docver/internal/manifest"
	"github.com/zentinel/docver/internal/render"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build HTML snapshots for every declared version",
	Long: `Renders the markdown sources of each version declared in the config
into {site_dir}/{version}/ and writes the version manifest to
{site_dir}/versions.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if len(cfg.Versions) == 0 {
			return fmt.Errorf("no versions declared in %s", cfgFile)
		}

		total := 0
		for _, v := range cfg.Versions {
			srcDir := filepath.Join(cfg.DocsDir, v.Path)
			if _, err := os.Stat(srcDir); os.IsNotExist(err) {
				return fmt.Errorf("sources for version %s not found at %s", v.Path, srcDir)
			}

			g := &render.Generator{
				SourceDir:   srcDir,
				OutputDir:   filepath.Join(cfg.SiteDir, v.Path),
				ProjectName: cfg.ProjectName,
				Version:     v.Version,
				NavID:       cfg.NavID,
				ContentID:   cfg.ContentID,
				Include:     cfg.Include,
				Exclude:     cfg.Exclude,
			}
			paths, err := g.Collect()
			if err != nil {
				return fmt.Errorf("collecting sources for %s: %w", v.Path, err)
			}

			bar := progressbar.Default(int64(len(paths)), fmt.Sprintf("rendering %s", v.Path))
			g.OnPage = func(string) { bar.Add(1) }

			n, err := g.Build(paths)
			if err != nil {
				return fmt.Errorf("building %s: %w", v.Path, err)
			}
			total += n
		}

		manifestPath := filepath.Join(cfg.SiteDir, manifest.FileName)
		if err := manifest.Write(cfg.Manifest(), manifestPath); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}

		fmt.Printf("Built %d pages across %d versions into %s\n", total, len(cfg.Versions), cfg.SiteDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
