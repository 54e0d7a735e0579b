// Package render produces the static site: index.html assembled with
// x/net/html from an embedded template, the per-plan requirement data in
// js/plans.js, the category stylesheet, and the embedded static assets.
package render
