// Package service provides domain services for dev config.
//
// Domain services orchestrate operations on domain models. They define
// interfaces for storage dependencies, allowing for dependency injection
// and testability.
//
// This package contains:
//
//   - SettingService: get, list and set operations over a settings store
package service
