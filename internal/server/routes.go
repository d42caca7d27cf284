package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/zentinel/docver/internal/resolve"
)

// handleManifest serves the validated manifest document.
func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	m, err := s.source.Load(r.Context())
	if err != nil {
		s.log.Warn("loading manifest", zap.Error(err))
		http.Error(w, `{"error":"manifest unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// handleSwitch redirects to the equivalent page under another version:
// GET /-/switch?to=26.01&from=/docs/25.12/configuration/. It is the
// no-script fallback for the selector, whose options carry the same
// precomputed destinations.
func (s *Server) handleSwitch(w http.ResponseWriter, r *http.Request) {
	to := r.URL.Query().Get("to")
	if to == "" {
		http.Error(w, "missing to parameter", http.StatusBadRequest)
		return
	}

	from := r.URL.Query().Get("from")
	// Destinations are same-site paths only; anything else falls back to
	// the site base. Backslashes are rejected because browsers normalize
	// them to slashes, which would turn "/\host/" into a scheme-relative
	// redirect.
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.ContainsRune(from, '\\') {
		from = s.cfg.BasePath + "/"
	}

	m, err := s.source.Load(r.Context())
	if err != nil {
		s.log.Warn("loading manifest for switch", zap.Error(err))
		http.Error(w, "version manifest unavailable", http.StatusServiceUnavailable)
		return
	}
	if m.Find(to) == nil {
		http.Error(w, "unknown version", http.StatusNotFound)
		return
	}

	http.Redirect(w, r, resolve.Rewrite(from, to), http.StatusFound)
}

// handlePage serves files from the site directory. HTML pages pass
// through the chrome injection pipeline; on any failure the original
// bytes are served so the page always stays readable.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rel := r.URL.Path
	if bp := s.cfg.BasePath; bp != "" {
		// The prefix must end at a segment boundary: /docs and /docs/x
		// are ours, /docsfoo/x is not.
		switch {
		case rel == bp:
			rel = "/"
		case strings.HasPrefix(rel, bp+"/"):
			rel = strings.TrimPrefix(rel, bp)
		default:
			http.NotFound(w, r)
			return
		}
	}
	if strings.HasSuffix(rel, "/") {
		rel += "index.html"
	}
	// Clean with the leading slash in place, so "../" cannot escape the
	// site directory.
	rel = path.Clean(rel)
	fsPath := filepath.Join(s.cfg.SiteDir, filepath.FromSlash(rel))

	info, err := os.Stat(fsPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if info.IsDir() {
		http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
		return
	}
	if !strings.HasSuffix(fsPath, ".html") {
		http.ServeFile(w, r, fsPath)
		return
	}
	s.servePage(w, r, fsPath)
}

// servePage reads an HTML page and decorates it with the version chrome.
// Manifest or decoration failures degrade to the undecorated page.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, fsPath string) {
	page, err := os.ReadFile(fsPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	out := page
	m, err := s.source.Load(r.Context())
	if err != nil {
		s.log.Warn("serving page without version chrome",
			zap.String("path", r.URL.Path),
			zap.Error(err))
	} else {
		decorated, res, derr := s.chrome.Decorate(page, r.URL.Path, m)
		if derr != nil {
			s.log.Warn("decorating page",
				zap.String("path", r.URL.Path),
				zap.Error(derr))
		} else {
			out = decorated
			s.log.Debug("decorated page",
				zap.String("path", r.URL.Path),
				zap.Bool("selector", res.Selector),
				zap.Bool("banner", res.Banner))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}
