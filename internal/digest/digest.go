// Package digest computes content digests for the generated site.
package digest

import (
	"encoding/hex"
	"sort"

	"golang.org/x/crypto/blake2b"
)

// File returns the hex BLAKE2b-256 digest of data.
func File(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns a short hex fingerprint over a set of file digests.
//
// Names are hashed in sorted order so the result does not depend on map
// iteration. The sum is truncated to 10 bytes (20 hex chars).
func Fingerprint(files map[string]string) string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	h, _ := blake2b.New256(nil)
	for _, name := range names {
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(files[name]))
		h.Write([]byte{'\n'})
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
