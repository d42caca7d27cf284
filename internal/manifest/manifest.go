// Package manifest loads and validates the versions.json document that
// enumerates the published documentation snapshots of a site.
package manifest

import (
	"errors"
	"fmt"
)

// FileName is the manifest's well-known name under the site base path.
const FileName = "versions.json"

// Load and shape failures. ErrUnavailable and ErrMalformed abort the load;
// the latest-entry errors do not — see Latest.
var (
	ErrUnavailable    = errors.New("manifest unavailable")
	ErrMalformed      = errors.New("manifest malformed")
	ErrNoLatest       = errors.New("manifest has no entry marked latest")
	ErrMultipleLatest = errors.New("manifest has multiple entries marked latest")
)

// Entry describes one published documentation snapshot.
type Entry struct {
	// Path is the version token used in URLs, e.g. "25.12".
	Path string `json:"path" yaml:"path" koanf:"path"`
	// Title is the label shown in the version selector.
	Title string `json:"title" yaml:"title" koanf:"title"`
	// Version is the display string used in the outdated banner. It may
	// differ from Path ("25.12 LTS" vs "25.12").
	Version string `json:"version" yaml:"version" koanf:"version"`
	// Latest marks the current release; a well-formed manifest has
	// exactly one such entry.
	Latest bool `json:"latest" yaml:"latest" koanf:"latest"`
}

// Manifest is the versions.json document. Versions order defines selector
// display order. Default is carried in the payload but not read by the
// rendering logic.
type Manifest struct {
	Default  string  `json:"default" yaml:"default" koanf:"default"`
	Versions []Entry `json:"versions" yaml:"versions" koanf:"versions"`
}

// Validate checks the structural requirements of the document: a non-empty
// versions list, required fields on every entry, and unique path tokens.
// Latest-flag ambiguity is deliberately not a validation failure; the
// selector can still render from an ambiguous manifest.
func (m *Manifest) Validate() error {
	if len(m.Versions) == 0 {
		return fmt.Errorf("%w: versions is missing or empty", ErrMalformed)
	}
	seen := make(map[string]bool, len(m.Versions))
	for i, e := range m.Versions {
		if e.Path == "" {
			return fmt.Errorf("%w: entry %d has no path", ErrMalformed, i)
		}
		if e.Title == "" {
			return fmt.Errorf("%w: entry %q has no title", ErrMalformed, e.Path)
		}
		if e.Version == "" {
			return fmt.Errorf("%w: entry %q has no version", ErrMalformed, e.Path)
		}
		if seen[e.Path] {
			return fmt.Errorf("%w: duplicate path %q", ErrMalformed, e.Path)
		}
		seen[e.Path] = true
	}
	return nil
}

// Find returns the entry whose path equals the given token, or nil.
func (m *Manifest) Find(path string) *Entry {
	for i := range m.Versions {
		if m.Versions[i].Path == path {
			return &m.Versions[i]
		}
	}
	return nil
}

// Latest returns the unique entry marked latest. Zero or multiple marked
// entries are reported as ErrNoLatest / ErrMultipleLatest so that callers
// can suppress the badge and banner logic that depends on a unique latest
// entry without treating the whole manifest as unusable.
func (m *Manifest) Latest() (*Entry, error) {
	var found *Entry
	for i := range m.Versions {
		if m.Versions[i].Latest {
			if found != nil {
				return nil, ErrMultipleLatest
			}
			found = &m.Versions[i]
		}
	}
	if found == nil {
		return nil, ErrNoLatest
	}
	return found, nil
}
