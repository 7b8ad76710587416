// Package repl provides the interactive mode of the dev CLI.
//
//   - repl.go: read-eval-print loop and line splitting
//   - completer.go: command name suggestions
//   - history.go: command history persistence
//
// The loop does not know about settings; it hands each parsed line to
// an Executor supplied by the command package.
package repl
