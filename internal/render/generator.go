// Package render builds one documentation version snapshot: markdown
// sources become a self-contained HTML tree whose pages carry the
// navigation and content regions the version chrome is injected into.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Generator converts one version's markdown tree into a static HTML tree.
type Generator struct {
	SourceDir   string
	OutputDir   string
	ProjectName string
	// Version is the display string of the snapshot being built, shown
	// in the page header.
	Version string
	// NavID and ContentID are baked into the page template so the
	// gateway's injection pipeline can find its target regions.
	NavID     string
	ContentID string
	Include   []string
	Exclude   []string
	// OnPage, when set, is invoked after each page is rendered.
	OnPage func(relPath string)
}

// pageData is passed to the HTML template for each page.
type pageData struct {
	Title       string
	ProjectName string
	Version     string
	NavID       string
	ContentID   string
	Content     template.HTML
	NavHTML     template.HTML
	BasePath    string
}

// Collect returns the relative paths of markdown files to render, after
// applying the include and exclude glob filters, in walk order.
func (g *Generator) Collect() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(g.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		rel, err := filepath.Rel(g.SourceDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if g.match(rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", g.SourceDir, err)
	}
	return paths, nil
}

// match applies include then exclude patterns to a relative path.
func (g *Generator) match(rel string) bool {
	included := len(g.Include) == 0
	for _, p := range g.Include {
		if ok, _ := doublestar.Match(p, rel); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, p := range g.Exclude {
		if ok, _ := doublestar.Match(p, rel); ok {
			return false
		}
	}
	return true
}

// Build renders the given markdown paths into OutputDir. Returns the
// number of pages written.
func (g *Generator) Build(paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, fmt.Errorf("no markdown files to render under %s", g.SourceDir)
	}

	titleMap := make(map[string]string, len(paths))
	for _, rel := range paths {
		content, err := os.ReadFile(filepath.Join(g.SourceDir, filepath.FromSlash(rel)))
		if err == nil {
			titleMap[rel] = extractTitle(string(content), rel)
		}
	}
	nav := BuildNav(paths, titleMap)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	for _, rel := range paths {
		if err := g.renderPage(md, tmpl, nav, titleMap, rel); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", rel, err)
		}
		if g.OnPage != nil {
			g.OnPage(rel)
		}
	}
	return len(paths), nil
}

// renderPage converts one markdown file to an HTML page.
func (g *Generator) renderPage(md goldmark.Markdown, tmpl *template.Template, nav *NavNode, titleMap map[string]string, rel string) error {
	content, err := os.ReadFile(filepath.Join(g.SourceDir, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}

	var htmlBuf bytes.Buffer
	if err := md.Convert(content, &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	htmlRel := mdPathToHTML(rel)
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(htmlRel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	// Relative prefix back to the snapshot root for CSS and nav links.
	basePath := strings.Repeat("../", strings.Count(htmlRel, "/"))

	data := pageData{
		Title:       titleMap[rel],
		ProjectName: g.ProjectName,
		Version:     g.Version,
		NavID:       g.NavID,
		ContentID:   g.ContentID,
		Content:     template.HTML(rewriteMDLinks(htmlBuf.String())),
		NavHTML:     template.HTML(nav.ToHTML(rel, basePath)),
		BasePath:    basePath,
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return os.WriteFile(outPath, out.Bytes(), 0o644)
}

// extractTitle pulls the first H1 heading out of markdown content, falling
// back to a cleaned-up file name.
func extractTitle(content, rel string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	name := strings.TrimSuffix(filepath.Base(rel), ".md")
	return formatName(name)
}

// rewriteMDLinks points intra-site links at the rendered pages.
func rewriteMDLinks(s string) string {
	s = strings.ReplaceAll(s, `.md"`, `.html"`)
	s = strings.ReplaceAll(s, `.md#`, `.html#`)
	return s
}

// mdPathToHTML converts a markdown path to its HTML equivalent.
func mdPathToHTML(p string) string {
	if strings.HasSuffix(p, ".md") {
		return strings.TrimSuffix(p, ".md") + ".html"
	}
	return p
}
