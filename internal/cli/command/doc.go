// Package command provides CLI command definitions for dev.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags, per-run setup
//   - config.go: Settings subcommand group (get, list, set, path)
//   - watch.go: Streaming of setting changes
//   - shell.go: Interactive mode built on the repl package
//   - errors.go: Shared error reporting and exit codes
//
// Commands parse their arguments, call the setting service and hand
// the result to an output.Formatter. Results go to App.Writer;
// diagnostics go to App.ErrWriter.
package command
