package config

import (
	"time"

	"github.com/zentinel/docver/internal/manifest"
)

// Config is the top-level docver configuration, corresponding to .docver.yml.
type Config struct {
	// CurrentVersion is the version token this deployment was built for.
	// It is fixed per deployment and never derived from request URLs.
	CurrentVersion string `yaml:"current_version" koanf:"current_version"`
	// BasePath is the URL prefix the site is served under, e.g. "/docs".
	// Empty means the site root.
	BasePath string `yaml:"base_path" koanf:"base_path"`
	// DocsDir holds markdown sources, one subdirectory per version token.
	DocsDir string `yaml:"docs_dir" koanf:"docs_dir"`
	// SiteDir is where built HTML snapshots and versions.json live.
	SiteDir string `yaml:"site_dir" koanf:"site_dir"`
	// ManifestURL points at a remote manifest host. When empty the
	// gateway reads {site_dir}/versions.json from disk.
	ManifestURL string `yaml:"manifest_url" koanf:"manifest_url"`
	// FetchTimeoutSeconds bounds remote manifest fetches.
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`

	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ProjectName     string `yaml:"project_name" koanf:"project_name"`

	// NavID and ContentID name the page regions the version chrome targets.
	NavID     string `yaml:"nav_id" koanf:"nav_id"`
	ContentID string `yaml:"content_id" koanf:"content_id"`

	// Include and Exclude filter markdown sources during builds.
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`

	// Default and Versions declare the manifest the build step writes
	// to {site_dir}/versions.json.
	Default  string           `yaml:"default" koanf:"default"`
	Versions []manifest.Entry `yaml:"versions" koanf:"versions"`
}

// FetchTimeout returns the manifest fetch bound as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Manifest assembles the declared version set into a manifest document.
func (c *Config) Manifest() *manifest.Manifest {
	return &manifest.Manifest{
		Default:  c.Default,
		Versions: c.Versions,
	}
}
