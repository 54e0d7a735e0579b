package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"progviz/internal/domain"
)

// ManifestFile is the name of the digest manifest in the output directory.
const ManifestFile = "manifest.json"

// SiteFileStore writes the generated site below a root directory.
type SiteFileStore struct {
	root string
	mu   sync.Mutex
}

var _ domain.SiteStore = (*SiteFileStore)(nil)

// NewSiteFileStore returns a store rooted at dir. The directory is created
// on first write.
func NewSiteFileStore(dir string) *SiteFileStore {
	return &SiteFileStore{root: dir}
}

// Root returns the output directory.
func (s *SiteFileStore) Root() string { return s.root }

// path maps a slash separated relative name to a path below root.
func (s *SiteFileStore) path(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("store: %q is outside the output directory", rel)
	}
	return filepath.Join(s.root, clean), nil
}

// WriteFile atomically replaces the file rel with data.
func (s *SiteFileStore) WriteFile(rel string, data []byte) error {
	p, err := s.path(rel)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeFile(p, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", rel, err)
	}
	return nil
}

// ReadFile returns the content of rel. A missing file is reported as an
// error wrapping os.ErrNotExist.
func (s *SiteFileStore) ReadFile(rel string) ([]byte, error) {
	p, err := s.path(rel)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := readFile(p)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", rel, err)
	}
	if b == nil {
		return nil, fmt.Errorf("store: read %s: %w", rel, os.ErrNotExist)
	}
	return b, nil
}

// SaveManifest writes the manifest next to the site files.
func (s *SiteFileStore) SaveManifest(m domain.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeJSON(filepath.Join(s.root, ManifestFile), m, 0o644); err != nil {
		return fmt.Errorf("store: save manifest: %w", err)
	}
	return nil
}

// LoadManifest reads the manifest. ok is false when none has been written.
func (s *SiteFileStore) LoadManifest() (domain.Manifest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := readFile(filepath.Join(s.root, ManifestFile))
	if err != nil {
		return domain.Manifest{}, false, fmt.Errorf("store: load manifest: %w", err)
	}
	if b == nil {
		return domain.Manifest{}, false, nil
	}
	var m domain.Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return domain.Manifest{}, false, fmt.Errorf("store: decode manifest: %w", err)
	}
	return m, true, nil
}
