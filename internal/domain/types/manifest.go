package types

// Manifest records the digest of every generated file.
type Manifest struct {
	Fingerprint string            `json:"fingerprint"`
	Files       map[string]string `json:"files"`
}
