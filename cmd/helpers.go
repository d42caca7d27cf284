package cmd

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zentinel/docver/internal/config"
	"github.com/zentinel/docver/internal/manifest"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docver init` to create a config file", err)
	}
	return cfg, nil
}

// newLogger builds the process logger; --verbose lowers the level to debug.
func newLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

// manifestSource picks the manifest source: a remote host when
// manifest_url is set, otherwise versions.json in the built site.
func manifestSource(cfg *config.Config) manifest.Source {
	if cfg.ManifestURL != "" {
		return manifest.NewHTTPSource(cfg.ManifestURL, cfg.FetchTimeout())
	}
	return manifest.NewFileSource(filepath.Join(cfg.SiteDir, manifest.FileName))
}
