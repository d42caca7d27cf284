package chrome

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/zentinel/docver/internal/manifest"
	"github.com/zentinel/docver/internal/resolve"
)

// injectSelector prepends the version selector into the navigation
// container. Reports (selector rendered, badge rendered). Missing
// container is a silent no-op; an already-present picker counts as
// rendered without inserting a second one.
func (c *Controller) injectSelector(doc *html.Node, pagePath string, m *manifest.Manifest, current *manifest.Entry, uniqueLatest bool) (bool, bool) {
	nav := findByID(doc, c.navID)
	if nav == nil {
		return false, false
	}
	if findByID(doc, PickerID) != nil {
		return true, findByID(doc, BadgeID) != nil
	}

	withBadge := current != nil && uniqueLatest
	frag := c.selectorFragment(pagePath, m, current, withBadge)
	nodes, err := parseFragment(frag)
	if err != nil {
		c.log.Warn("building version selector", zap.Error(err))
		return false, false
	}
	prependChildren(nav, nodes)
	return true, withBadge
}

// selectorFragment renders the picker markup: a labeled select whose
// option values are full destination paths, plus the status badge when a
// current entry exists and the manifest has a unique latest entry.
func (c *Controller) selectorFragment(pagePath string, m *manifest.Manifest, current *manifest.Entry, withBadge bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div id="%s" class="version-picker">`, PickerID)
	fmt.Fprintf(&b, `<label for="%s">Version</label>`, SelectID)
	fmt.Fprintf(&b, `<select id="%s" onchange="if (this.value) window.location.assign(this.value)">`, SelectID)
	for _, e := range m.Versions {
		dest := resolve.Rewrite(pagePath, e.Path)
		selected := ""
		if e.Path == c.current {
			selected = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`,
			html.EscapeString(dest), selected, html.EscapeString(e.Title))
	}
	b.WriteString(`</select>`)
	if withBadge {
		text, class := "Outdated", "outdated"
		if current.Latest {
			text, class = "Latest", "latest"
		}
		fmt.Fprintf(&b, `<span id="%s" class="version-badge %s">%s</span>`, BadgeID, class, text)
	}
	b.WriteString(`</div>`)
	return b.String()
}
