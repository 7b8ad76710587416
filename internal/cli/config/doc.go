// Package config defines the dev CLI's own configuration.
//
//   - spec.go: CLIConfig struct (~/.dev/cli.yaml)
//   - loader.go: loading through confloader and settings directory resolution
//
// This is configuration of the tool itself (where the settings directory
// lives, output format, logging), not the settings the tool manages.
package config
