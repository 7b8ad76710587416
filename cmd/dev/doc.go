// Package main provides the entry point for dev.
//
// dev reads and writes developer settings stored as one JSON file per
// setting in a configuration directory:
//
//   - config get NAME: print a setting, or <not set> on stderr
//   - config list: table of every setting, sorted by name
//   - config set NAME VALUE [-j|--json]: store a string, or parsed JSON
//   - config path: print the settings directory
//   - config watch: print settings as they are written
//
// Usage:
//
//	dev config set editor vim
//	dev config set --json window '{"width":120}'
//	dev -o json config list
//
// Build metadata is injected with
//
//	-ldflags "-X github.com/yndnr/dev-go/internal/infra/buildinfo.Version=..."
package main
