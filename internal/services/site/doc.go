// Package site renders a program into the static site and writes it
// through a domain.SiteStore, recording BLAKE2b digests in a manifest.
package site
