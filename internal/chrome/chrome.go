// Package chrome decorates documentation pages with version navigation:
// a version selector with a latest/outdated badge in the page's navigation
// region, and a staleness banner at the top of the main content region.
//
// Both regions are optional collaborators. A page without them is served
// untouched; their absence is an expected layout variation, not an error.
package chrome

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/zentinel/docver/internal/manifest"
)

// Stable element ids. Injection checks for them before inserting, so
// decorating a page twice yields a single picker and a single banner.
const (
	PickerID = "version-picker"
	SelectID = "version-select"
	BadgeID  = "version-badge"
	BannerID = "version-banner"
)

// Default container ids looked up in the page.
const (
	DefaultNavID     = "version-nav"
	DefaultContentID = "content"
)

// Config wires a Controller. CurrentVersion is the version token baked
// into the deployment at build time; it is never derived from the URL.
type Config struct {
	CurrentVersion string
	BasePath       string
	NavID          string
	ContentID      string
	Logger         *zap.Logger
}

// Controller injects version chrome into served pages.
type Controller struct {
	current   string
	basePath  string
	navID     string
	contentID string
	log       *zap.Logger
}

func New(cfg Config) *Controller {
	c := &Controller{
		current:   cfg.CurrentVersion,
		basePath:  cfg.BasePath,
		navID:     cfg.NavID,
		contentID: cfg.ContentID,
		log:       cfg.Logger,
	}
	if c.navID == "" {
		c.navID = DefaultNavID
	}
	if c.contentID == "" {
		c.contentID = DefaultContentID
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Result reports which pieces of chrome ended up in the page. A false
// field means the piece was skipped: container absent, no matching
// version entry, or the manifest did not support it.
type Result struct {
	Selector bool
	Badge    bool
	Banner   bool
}

// Decorate parses the page, injects the selector and banner according to
// the manifest, and returns the rewritten document. pagePath is the URL
// path the page is served under, used to compute per-version destinations.
// On parse or render failure the original bytes are returned so the caller
// can always fall back to serving the page unmodified.
func (c *Controller) Decorate(page []byte, pagePath string, m *manifest.Manifest) ([]byte, Result, error) {
	var res Result

	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return page, res, fmt.Errorf("parsing page html: %w", err)
	}

	current := m.Find(c.current)
	latest, latestErr := m.Latest()
	if latestErr != nil {
		// Zero or multiple latest entries: the selector still renders,
		// but badge and banner have no reference point.
		c.log.Warn("ambiguous version manifest",
			zap.String("current", c.current),
			zap.Error(latestErr))
		latest = nil
	}

	res.Selector, res.Badge = c.injectSelector(doc, pagePath, m, current, latestErr == nil)
	res.Banner = c.injectBanner(doc, current, latest)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return page, Result{}, fmt.Errorf("rendering page html: %w", err)
	}
	return buf.Bytes(), res, nil
}
