package chrome

import (
	"strings"
	"testing"

	"github.com/zentinel/docver/internal/manifest"
)

const fullPage = `<!DOCTYPE html>
<html><head><title>Server Configuration</title></head>
<body>
<nav id="version-nav"><span class="site-title">Zentinel</span></nav>
<main id="content"><h1>Server Configuration</h1><p>Listeners and upstreams.</p></main>
</body></html>`

const noChromePage = `<!DOCTYPE html>
<html><head><title>Bare</title></head>
<body><article><h1>Bare page</h1></article></body></html>`

func testManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Default: "26.01",
		Versions: []manifest.Entry{
			{Path: "25.12", Title: "25.12 LTS", Version: "25.12 LTS"},
			{Path: "26.01", Title: "26.01", Version: "26.01", Latest: true},
		},
	}
}

func decorate(t *testing.T, cfg Config, page, pagePath string, m *manifest.Manifest) (string, Result) {
	t.Helper()
	out, res, err := New(cfg).Decorate([]byte(page), pagePath, m)
	if err != nil {
		t.Fatalf("Decorate: %v", err)
	}
	return string(out), res
}

func TestSelectorRendered(t *testing.T) {
	out, res := decorate(t, Config{CurrentVersion: "25.12", BasePath: "/docs"},
		fullPage, "/docs/25.12/configuration/server/", testManifest())

	if !res.Selector {
		t.Fatal("selector not rendered")
	}
	// Option values carry full destinations with the first version
	// segment rewritten.
	if !strings.Contains(out, `value="/docs/26.01/configuration/server/"`) {
		t.Errorf("missing rewritten destination for 26.01 in:\n%s", out)
	}
	if !strings.Contains(out, `value="/docs/25.12/configuration/server/" selected`) {
		t.Errorf("current version option not pre-selected in:\n%s", out)
	}
	if !strings.Contains(out, ">25.12 LTS</option>") {
		t.Errorf("option label missing in:\n%s", out)
	}
}

func TestBadgeOutdated(t *testing.T) {
	out, res := decorate(t, Config{CurrentVersion: "25.12"},
		fullPage, "/25.12/intro/", testManifest())
	if !res.Badge {
		t.Fatal("badge not rendered")
	}
	if !strings.Contains(out, ">Outdated</span>") {
		t.Errorf("expected Outdated badge in:\n%s", out)
	}
}

func TestBadgeLatest(t *testing.T) {
	out, res := decorate(t, Config{CurrentVersion: "26.01"},
		fullPage, "/26.01/intro/", testManifest())
	if !res.Badge {
		t.Fatal("badge not rendered")
	}
	if !strings.Contains(out, ">Latest</span>") {
		t.Errorf("expected Latest badge in:\n%s", out)
	}
}

func TestBadgeOmittedForUnknownVersion(t *testing.T) {
	out, res := decorate(t, Config{CurrentVersion: "99.99"},
		fullPage, "/99.99/intro/", testManifest())
	if !res.Selector {
		t.Fatal("selector should still render for an unknown current version")
	}
	if res.Badge {
		t.Error("badge should be omitted when no entry matches")
	}
	if strings.Contains(out, BadgeID) {
		t.Error("badge element present in output")
	}
	// No option pre-selected: browsers fall back to the first entry.
	if strings.Contains(out, "selected") {
		t.Error("no option should be pre-selected")
	}
}

func TestBannerRendered(t *testing.T) {
	out, res := decorate(t, Config{CurrentVersion: "25.12", BasePath: "/docs"},
		fullPage, "/docs/25.12/configuration/server/", testManifest())
	if !res.Banner {
		t.Fatal("banner not rendered")
	}
	if !strings.Contains(out, "version 25.12 LTS") {
		t.Errorf("banner should state the viewed version in:\n%s", out)
	}
	if !strings.Contains(out, `href="/docs/26.01/"`) {
		t.Errorf("banner should link to the latest landing page in:\n%s", out)
	}
	if !strings.Contains(out, ">26.01</a>") {
		t.Errorf("banner link text should use the latest display version in:\n%s", out)
	}
	// Banner goes first in the content region, before the heading.
	if strings.Index(out, BannerID) > strings.Index(out, "<h1>") {
		t.Error("banner should be prepended before the page heading")
	}
}

func TestBannerSuppressedOnLatest(t *testing.T) {
	out, res := decorate(t, Config{CurrentVersion: "26.01"},
		fullPage, "/26.01/intro/", testManifest())
	if res.Banner {
		t.Error("no banner expected on the latest version")
	}
	if strings.Contains(out, BannerID) {
		t.Error("banner element present in output")
	}
}

func TestBannerSuppressedForUnknownVersion(t *testing.T) {
	_, res := decorate(t, Config{CurrentVersion: "99.99"},
		fullPage, "/99.99/intro/", testManifest())
	if res.Banner {
		t.Error("no banner expected when current version has no entry")
	}
}

func TestAmbiguousManifestSuppressesBadgeAndBanner(t *testing.T) {
	m := testManifest()
	m.Versions[0].Latest = true // two latest entries

	out, res := decorate(t, Config{CurrentVersion: "25.12"},
		fullPage, "/25.12/intro/", m)
	if !res.Selector {
		t.Error("selector should survive an ambiguous manifest")
	}
	if res.Badge || res.Banner {
		t.Errorf("badge/banner should be suppressed, got %+v", res)
	}
	if strings.Contains(out, BadgeID) || strings.Contains(out, BannerID) {
		t.Error("badge or banner element present in output")
	}
}

func TestChromeAbsent(t *testing.T) {
	out, res := decorate(t, Config{CurrentVersion: "25.12"},
		noChromePage, "/25.12/intro/", testManifest())
	if res.Selector || res.Badge {
		t.Errorf("nothing should render without a nav container, got %+v", res)
	}
	if !strings.Contains(out, "<h1>Bare page</h1>") {
		t.Error("page content must survive decoration")
	}
}

func TestBannerFallsBackToMainElement(t *testing.T) {
	page := `<html><body><nav id="version-nav"></nav><main><h1>x</h1></main></body></html>`
	out, res := decorate(t, Config{CurrentVersion: "25.12", ContentID: "no-such-id"},
		page, "/25.12/x/", testManifest())
	if !res.Banner {
		t.Fatal("banner should land in <main> when the content id is absent")
	}
	if !strings.Contains(out, BannerID) {
		t.Error("banner element missing")
	}
}

func TestDecorateIdempotent(t *testing.T) {
	cfg := Config{CurrentVersion: "25.12"}
	ctrl := New(cfg)
	m := testManifest()

	once, res1, err := ctrl.Decorate([]byte(fullPage), "/25.12/intro/", m)
	if err != nil {
		t.Fatalf("first Decorate: %v", err)
	}
	twice, res2, err := ctrl.Decorate(once, "/25.12/intro/", m)
	if err != nil {
		t.Fatalf("second Decorate: %v", err)
	}

	if !res1.Selector || !res2.Selector || !res1.Banner || !res2.Banner {
		t.Errorf("both passes should report rendered chrome: %+v %+v", res1, res2)
	}
	out := string(twice)
	if got := strings.Count(out, `id="`+PickerID+`"`); got != 1 {
		t.Errorf("picker count = %d, want 1", got)
	}
	if got := strings.Count(out, `id="`+BannerID+`"`); got != 1 {
		t.Errorf("banner count = %d, want 1", got)
	}
}

func TestTitlesAreEscaped(t *testing.T) {
	m := testManifest()
	m.Versions[0].Title = `25.12 <script>alert(1)</script>`

	out, _ := decorate(t, Config{CurrentVersion: "26.01"},
		fullPage, "/26.01/intro/", m)
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("option title not escaped")
	}
}
