package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a manifest fetch when no explicit timeout is
// configured. A slow manifest host must never hold up page delivery.
const DefaultTimeout = 5 * time.Second

// maxManifestBytes caps how much of a response body is read. A manifest
// enumerating a few dozen versions is a handful of kilobytes.
const maxManifestBytes = 1 << 20

// Source retrieves and validates a manifest document. Implementations
// return errors wrapping ErrUnavailable or ErrMalformed so callers can
// classify the failure; every failure degrades to "no version picker".
type Source interface {
	Load(ctx context.Context) (*Manifest, error)
}

// HTTPSource fetches {base}/versions.json over HTTP.
type HTTPSource struct {
	base string
	hc   *http.Client
}

// NewHTTPSource creates an HTTPSource rooted at base. A non-positive
// timeout falls back to DefaultTimeout.
func NewHTTPSource(base string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &HTTPSource{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout, Transport: tr},
	}
}

func (s *HTTPSource) Load(ctx context.Context) (*Manifest, error) {
	u := s.base + "/" + FileName
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", ErrUnavailable, u, err)
	}
	req.Header.Set("Accept", "application/json")
	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, u, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: status=%d", ErrUnavailable, u, res.StatusCode)
	}
	return decode(io.LimitReader(res.Body, maxManifestBytes))
}

// FileSource reads the manifest from a local file, for gateways serving a
// built site from disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (*Manifest, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, s.path, err)
	}
	return decode(bytes.NewReader(data))
}

func decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: decoding json: %v", ErrMalformed, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Write marshals the manifest to path as indented JSON. The build step
// uses this to emit versions.json at the site root.
func Write(m *Manifest, path string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling manifest: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
