// Package confloader provides the configuration loading mechanism.
//
// It uses koanf to merge several sources into one typed struct.
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables (DEV_ prefix)
//  3. Configuration file (YAML)
//  4. Values already present in the target struct (defaults)
//
// Watcher wraps fsnotify to report writes under a file's directory, or
// inside a watched directory.
package confloader
