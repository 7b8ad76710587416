// Package domain defines the core domain models for dev config.
//
// Domain models are pure values without any IO dependencies or framework
// coupling. This package contains:
//
//   - Setting: a named, JSON-valued configuration entry
//   - Errors: domain-specific error definitions with stable codes
package domain
