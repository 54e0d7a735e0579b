// Package app wires application dependencies for the CLI.
//
// It loads Config from progviz.yaml, the environment and flags, builds the
// workbook readers, site store and services from it, exposing them via the
// Wire struct, and runs the build pipeline through App.
package app
