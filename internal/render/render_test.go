package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	src := t.TempDir()
	writeFixture(t, src, "index.md", "# Zentinel Docs\n\nWelcome.\n")
	writeFixture(t, src, "configuration/server.md", "# Server Configuration\n\n```yaml\nport: 8080\n```\n")
	writeFixture(t, src, "drafts/wip.md", "# WIP\n")
	return &Generator{
		SourceDir:   src,
		OutputDir:   t.TempDir(),
		ProjectName: "Zentinel",
		Version:     "26.01",
		NavID:       "version-nav",
		ContentID:   "content",
		Include:     []string{"**/*.md"},
		Exclude:     []string{"drafts/**"},
	}
}

func TestCollectAppliesGlobs(t *testing.T) {
	g := newTestGenerator(t)
	paths, err := g.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want 2 entries", paths)
	}
	for _, p := range paths {
		if strings.HasPrefix(p, "drafts/") {
			t.Errorf("excluded path %q collected", p)
		}
	}
}

func TestBuildWritesPagesWithChromeTargets(t *testing.T) {
	g := newTestGenerator(t)
	paths, err := g.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var seen []string
	g.OnPage = func(rel string) { seen = append(seen, rel) }

	n, err := g.Build(paths)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if n != 2 || len(seen) != 2 {
		t.Fatalf("rendered %d pages (callback %d), want 2", n, len(seen))
	}

	data, err := os.ReadFile(filepath.Join(g.OutputDir, "configuration", "server.html"))
	if err != nil {
		t.Fatalf("reading output page: %v", err)
	}
	page := string(data)

	if !strings.Contains(page, `id="version-nav"`) {
		t.Error("page missing the navigation region")
	}
	if !strings.Contains(page, `<main id="content"`) {
		t.Error("page missing the main content region")
	}
	if !strings.Contains(page, "<h1 id=\"server-configuration\">Server Configuration</h1>") {
		t.Errorf("markdown not rendered:\n%s", page)
	}
	if !strings.Contains(page, `href="../style.css"`) {
		t.Error("nested page should reference the stylesheet relatively")
	}
	if !strings.Contains(page, "26.01") {
		t.Error("page header should show the snapshot version")
	}

	if _, err := os.Stat(filepath.Join(g.OutputDir, "style.css")); err != nil {
		t.Errorf("style.css not written: %v", err)
	}
}

func TestBuildEmptySource(t *testing.T) {
	g := &Generator{SourceDir: t.TempDir(), OutputDir: t.TempDir()}
	if _, err := g.Build(nil); err == nil {
		t.Error("expected error for empty source")
	}
}

func TestBuildNavOrderAndActive(t *testing.T) {
	paths := []string{"index.md", "configuration/server.md", "configuration/agents.md"}
	titles := map[string]string{
		"index.md":                "Home",
		"configuration/server.md": "Server",
		"configuration/agents.md": "Agents",
	}
	nav := BuildNav(paths, titles)

	if len(nav.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(nav.Children))
	}
	// Directories sort before files.
	if !nav.Children[0].IsDir || nav.Children[0].Name != "configuration" {
		t.Errorf("first child = %+v, want configuration dir", nav.Children[0])
	}

	html := nav.ToHTML("configuration/server.md", "")
	if !strings.Contains(html, `href="configuration/server.html" class="active"`) {
		t.Errorf("active page not highlighted:\n%s", html)
	}
	if !strings.Contains(html, ">Agents</a>") {
		t.Errorf("sibling page missing:\n%s", html)
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		content string
		rel     string
		want    string
	}{
		{"# Load Balancing\n\ntext", "lb.md", "Load Balancing"},
		{"no heading here", "getting-started.md", "Getting Started"},
		{"", "health_checks.md", "Health Checks"},
	}
	for _, tt := range tests {
		if got := extractTitle(tt.content, tt.rel); got != tt.want {
			t.Errorf("extractTitle(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestRewriteMDLinks(t *testing.T) {
	in := `<a href="server.md">Server</a> <a href="intro.md#setup">Setup</a>`
	out := rewriteMDLinks(in)
	if !strings.Contains(out, `href="server.html"`) || !strings.Contains(out, `href="intro.html#setup"`) {
		t.Errorf("links not rewritten: %s", out)
	}
}
