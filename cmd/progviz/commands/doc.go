// Package commands defines the progviz CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Write a default progviz.yaml
//   - build        Read the workbooks and write the static site
//   - watch        Rebuild whenever an input workbook changes
//   - requisites   Print the prerequisites and corequisites extracted per course
//   - plans        Print each plan with its reconciled requirements
//   - fingerprint  Print or verify the digest of the generated site
//
// # Implementation
//
// The root command loads the configuration (progviz.yaml, .env, PROGVIZ_*
// variables, then flags) and builds the zap logger before any subcommand
// runs. Subcommands that read workbooks build the dependency graph through
// requireApp so that init and free-text extraction work without one.
package commands
