package chrome

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/zentinel/docver/internal/manifest"
)

// injectBanner prepends the staleness banner as the first child of the
// main content region. The banner appears only when the deployment's
// version has a manifest entry, that entry is not the latest, and a
// unique latest entry exists. Missing content region is a silent no-op.
func (c *Controller) injectBanner(doc *html.Node, current, latest *manifest.Entry) bool {
	if current == nil || latest == nil || current.Latest {
		return false
	}
	region := findByID(doc, c.contentID)
	if region == nil {
		region = findElement(doc, atom.Main)
	}
	if region == nil {
		return false
	}
	if findByID(doc, BannerID) != nil {
		return true
	}

	href := c.basePath + "/" + latest.Path + "/"
	frag := fmt.Sprintf(
		`<div id="%s" class="version-banner" role="note">You are viewing the documentation for version %s. The latest version is <a href="%s">%s</a>.</div>`,
		BannerID,
		html.EscapeString(current.Version),
		html.EscapeString(href),
		html.EscapeString(latest.Version),
	)
	nodes, err := parseFragment(frag)
	if err != nil {
		c.log.Warn("building staleness banner", zap.Error(err))
		return false
	}
	prependChildren(region, nodes)
	return true
}
