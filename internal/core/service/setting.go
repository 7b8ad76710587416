// Package service provides domain services for dev config.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/yndnr/dev-go/internal/core/domain"
	"github.com/yndnr/dev-go/internal/telemetry/logger"
)

// SettingRepository defines the storage interface for settings.
// Every method fails with a storage-specific error on I/O or decode failure.
type SettingRepository interface {
	// Exists reports whether a setting is present.
	Exists(name string) (bool, error)

	// Get returns the decoded value of a setting.
	Get(name string) (any, error)

	// Set persists a JSON-encodable value under name.
	Set(name string, value any) error

	// Names returns all setting names in the store.
	Names() ([]string, error)
}

// SettingService handles reading, listing and writing settings.
type SettingService struct {
	repo SettingRepository
}

// NewSettingService creates a new SettingService.
func NewSettingService(repo SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// Get looks up a setting. found is false, with a nil error, when the
// setting has never been set.
func (s *SettingService) Get(ctx context.Context, name string) (value any, found bool, err error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, false, err
	}

	ok, err := s.repo.Exists(name)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		logger.L(ctx).Debug("setting not set", "setting", name)
		return nil, false, nil
	}

	value, err = s.repo.Get(name)
	if errors.Is(err, domain.ErrSettingNotFound) {
		// Removed between Exists and Get.
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	logger.L(ctx).Debug("setting read", "setting", name, "value", logger.RedactSetting(name, domain.RenderValue(value)))
	return value, true, nil
}

// List returns every setting sorted by name. Any read or decode error
// aborts the listing.
func (s *SettingService) List(ctx context.Context) ([]domain.Setting, error) {
	names, err := s.repo.Names()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	settings := make([]domain.Setting, 0, len(names))
	for _, name := range names {
		value, err := s.repo.Get(name)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", name, err)
		}
		settings = append(settings, domain.Setting{Name: name, Value: value})
	}

	logger.L(ctx).Debug("settings listed", "count", len(settings))
	return settings, nil
}

// Set stores raw under name. With isJSON the raw text must be exactly one
// JSON document and is validated before anything is written; otherwise
// raw is stored as a JSON string.
func (s *SettingService) Set(ctx context.Context, name, raw string, isJSON bool) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	value, err := ParseValue(raw, isJSON)
	if err != nil {
		return err
	}

	if err := s.repo.Set(name, value); err != nil {
		return err
	}

	logger.L(ctx).Debug("setting written", "setting", name, "json", isJSON, "value", logger.RedactSetting(name, domain.RenderValue(value)))
	return nil
}

// ParseValue converts command-line text into a setting value. Text that
// is not valid UTF-8 is rejected in both modes.
func ParseValue(raw string, isJSON bool) (any, error) {
	if !utf8.ValidString(raw) {
		return nil, domain.ErrInvalidValue.WithDetails("value is not valid UTF-8")
	}
	if !isJSON {
		return raw, nil
	}
	return domain.DecodeValue([]byte(raw))
}
