package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"progviz/internal/digest"
)

func TestFile(t *testing.T) {
	a := digest.File([]byte("index"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, digest.File([]byte("index")))
	assert.NotEqual(t, a, digest.File([]byte("index2")))
}

func TestFingerprint(t *testing.T) {
	files := map[string]string{
		"index.html":  digest.File([]byte("<html>")),
		"js/plans.js": digest.File([]byte("window.PROGVIZ_PLANS = {}")),
	}
	fp := digest.Fingerprint(files)
	assert.Len(t, fp, 20)

	for i := 0; i < 5; i++ {
		assert.Equal(t, fp, digest.Fingerprint(files))
	}

	files["styles/category.css"] = digest.File([]byte(".x{}"))
	assert.NotEqual(t, fp, digest.Fingerprint(files))

	// Moving a digest to another name changes the fingerprint.
	moved := map[string]string{"a": "1", "b": "2"}
	swapped := map[string]string{"a": "2", "b": "1"}
	assert.NotEqual(t, digest.Fingerprint(moved), digest.Fingerprint(swapped))
}
