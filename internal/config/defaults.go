package config

import "github.com/zentinel/docver/internal/chrome"

// DefaultExcludes are glob patterns skipped during builds by default.
var DefaultExcludes = []string{
	".git/**",
	"drafts/**",
	"node_modules/**",
}

// DefaultConfig returns a Config with sensible defaults. CurrentVersion
// has no default: it is a per-deployment decision.
func DefaultConfig() *Config {
	return &Config{
		DocsDir:             "docs",
		SiteDir:             "site",
		FetchTimeoutSeconds: 5,
		Port:                8080,
		ProjectName:         "Documentation",
		NavID:               chrome.DefaultNavID,
		ContentID:           chrome.DefaultContentID,
		Include:             []string{"**/*.md"},
		Exclude:             DefaultExcludes,
	}
}
