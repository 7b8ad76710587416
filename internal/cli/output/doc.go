// Package output provides output formatting for the dev CLI.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: plain-text tables with a dashed header rule
//   - json.go: indented JSON
//   - yaml.go: YAML
//
// Command results go to stdout through a Formatter; diagnostics never do.
package output
