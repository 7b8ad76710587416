// Package logger provides structured logging for the dev CLI.
//
// It wraps log/slog. Diagnostics go to stderr so they never mix with
// command output on stdout. Attributes whose key looks like a credential
// are redacted before they reach the handler, and RedactSetting masks the
// values of settings with sensitive names.
package logger
