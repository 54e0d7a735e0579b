package site

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"progviz/internal/digest"
	"progviz/internal/domain"
	"progviz/internal/render"
)

// Service publishes and verifies the generated site.
type Service struct {
	store domain.SiteStore
	log   *zap.Logger
}

var _ domain.SiteService = (*Service)(nil)

func New(store domain.SiteStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

// Publish writes every site file and the manifest. Asset URLs in
// index.html carry the fingerprint of the assets it links to; the manifest
// fingerprint covers every file, index.html included.
func (s *Service) Publish(p domain.Program) (domain.Manifest, error) {
	files, err := render.StaticAssets()
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("site: static assets: %w", err)
	}
	plans, err := render.PlansJS(p)
	if err != nil {
		return domain.Manifest{}, err
	}
	files[render.PlansFile] = plans
	files[render.CategoryFile] = render.CategoryCSS(p.Categories)

	version := digest.Fingerprint(digests(files))
	page, err := render.Page(p, version)
	if err != nil {
		return domain.Manifest{}, err
	}
	files[render.IndexFile] = page

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.store.WriteFile(name, files[name]); err != nil {
			return domain.Manifest{}, err
		}
		s.log.Debug("Wrote site file", zap.String("file", name), zap.Int("bytes", len(files[name])))
	}

	m := domain.Manifest{Files: digests(files)}
	m.Fingerprint = digest.Fingerprint(m.Files)
	if err := s.store.SaveManifest(m); err != nil {
		return domain.Manifest{}, err
	}
	s.log.Info("Site published",
		zap.Int("files", len(files)),
		zap.Int("plans", len(p.Plans)),
		zap.String("fingerprint", m.Fingerprint))
	return m, nil
}

// ErrNoManifest is returned by Verify before the first Publish.
var ErrNoManifest = errors.New("site: no manifest; run build first")

// Verify recomputes the digest of every file in the manifest. It returns the
// manifest and the names of files that are missing or changed.
func (s *Service) Verify() (domain.Manifest, []string, error) {
	m, ok, err := s.store.LoadManifest()
	if err != nil {
		return domain.Manifest{}, nil, err
	}
	if !ok {
		return domain.Manifest{}, nil, ErrNoManifest
	}

	names := make([]string, 0, len(m.Files))
	for name := range m.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	var changed []string
	for _, name := range names {
		b, err := s.store.ReadFile(name)
		if errors.Is(err, os.ErrNotExist) {
			changed = append(changed, name)
			continue
		}
		if err != nil {
			return domain.Manifest{}, nil, err
		}
		if digest.File(b) != m.Files[name] {
			changed = append(changed, name)
		}
	}
	return m, changed, nil
}

func digests(files map[string][]byte) map[string]string {
	out := make(map[string]string, len(files))
	for name, b := range files {
		out[name] = digest.File(b)
	}
	return out
}
