package site_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"progviz/internal/digest"
	"progviz/internal/domain"
	"progviz/internal/render"
	"progviz/internal/services/site"
	"progviz/internal/store"
)

func program() domain.Program {
	return domain.Program{
		Department: "ECE",
		Categories: []domain.Category{{Name: "Math", Color: "ff0000"}},
		Plans: []domain.Plan{{Name: "Traditional", Terms: []domain.Term{{
			Name: "Term 1",
			Slots: []domain.Slot{{Course: domain.Course{
				Name:     "MATH 100",
				Category: "Math",
				Prereqs:  []domain.Requirement{},
				Coreqs:   []domain.Requirement{},
			}}},
		}}}},
	}
}

func TestPublish(t *testing.T) {
	dir := t.TempDir()
	svc := site.New(store.NewSiteFileStore(dir), zap.NewNop())

	m, err := svc.Publish(program())
	require.NoError(t, err)

	for _, name := range []string{render.IndexFile, render.PlansFile, render.ControllerFile, render.MainCSSFile, render.CategoryFile} {
		b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		assert.Equal(t, digest.File(b), m.Files[name], name)
	}
	assert.Equal(t, digest.Fingerprint(m.Files), m.Fingerprint)

	index, err := os.ReadFile(filepath.Join(dir, render.IndexFile))
	require.NoError(t, err)
	assert.Contains(t, string(index), "js/plans.js?v=")
	assert.FileExists(t, filepath.Join(dir, store.ManifestFile))
}

func TestPublish_Deterministic(t *testing.T) {
	a, err := site.New(store.NewSiteFileStore(t.TempDir()), nil).Publish(program())
	require.NoError(t, err)
	b, err := site.New(store.NewSiteFileStore(t.TempDir()), nil).Publish(program())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	svc := site.New(store.NewSiteFileStore(dir), nil)

	_, _, err := svc.Verify()
	require.ErrorIs(t, err, site.ErrNoManifest)

	_, err = svc.Publish(program())
	require.NoError(t, err)

	_, changed, err := svc.Verify()
	require.NoError(t, err)
	assert.Empty(t, changed)

	css := filepath.Join(dir, "styles", "category.css")
	require.NoError(t, os.WriteFile(css, []byte("/* edited */"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, "js", "plans.js")))

	_, changed, err = svc.Verify()
	require.NoError(t, err)
	assert.Equal(t, []string{render.PlansFile, render.CategoryFile}, changed)
	assert.False(t, strings.Contains(strings.Join(changed, ","), render.IndexFile))
}
