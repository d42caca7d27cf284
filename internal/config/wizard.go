package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .docver.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to docver! Let's configure your documentation site.")
	fmt.Println()

	cfg := DefaultConfig()

	currentPrompt := promptui.Prompt{
		Label: "Version this deployment is built for (e.g. 26.01)",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("a version token is required")
			}
			if strings.Contains(s, "/") {
				return fmt.Errorf("version token must not contain slashes")
			}
			return nil
		},
	}
	current, err := currentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("current version: %w", err)
	}
	cfg.CurrentVersion = strings.TrimSpace(current)

	basePrompt := promptui.Prompt{
		Label:   "Base path the site is served under (blank for root)",
		Default: "",
		Validate: func(s string) error {
			if s == "" {
				return nil
			}
			if !strings.HasPrefix(s, "/") || strings.HasSuffix(s, "/") {
				return fmt.Errorf("base path must look like /docs")
			}
			return nil
		},
	}
	basePath, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base path: %w", err)
	}
	cfg.BasePath = basePath

	docsPrompt := promptui.Prompt{
		Label:   "Markdown sources directory",
		Default: cfg.DocsDir,
	}
	if cfg.DocsDir, err = docsPrompt.Run(); err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}

	sitePrompt := promptui.Prompt{
		Label:   "Built site directory",
		Default: cfg.SiteDir,
	}
	if cfg.SiteDir, err = sitePrompt.Run(); err != nil {
		return nil, fmt.Errorf("site dir: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:   "Gateway port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, convErr := strconv.Atoi(s)
			if convErr != nil || p < 1 || p > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	namePrompt := promptui.Prompt{
		Label:   "Project name shown in page titles",
		Default: cfg.ProjectName,
	}
	if cfg.ProjectName, err = namePrompt.Run(); err != nil {
		return nil, fmt.Errorf("project name: %w", err)
	}

	configPath := ".docver.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("Declare your published versions under `versions:` before running `docver build`.")
	return cfg, nil
}
