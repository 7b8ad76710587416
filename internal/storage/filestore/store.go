package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/yndnr/dev-go/internal/core/domain"
)

const (
	// DefaultDirMode is used when Set creates the configuration directory.
	DefaultDirMode os.FileMode = 0o700

	// DefaultFileMode is the permission of every setting file.
	DefaultFileMode os.FileMode = 0o600

	tempPattern = ".setting-*.tmp"
)

// Store is a directory of JSON-encoded settings.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is not created until
// the first Set.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the configuration directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path a setting is stored under.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, domain.FileName(name))
}

// Exists reports whether a setting file is present.
func (s *Store) Exists(name string) (bool, error) {
	if err := domain.ValidateName(name); err != nil {
		return false, err
	}

	info, err := os.Stat(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, storageError("stat "+name, err)
	}
	if info.IsDir() {
		return false, domain.ErrStorage.WithDetails(fmt.Sprintf("%s is a directory", s.Path(name)))
	}
	return true, nil
}

// Get reads and decodes a setting.
// Returns ErrSettingNotFound if the setting has never been set.
func (s *Store) Get(name string) (any, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrSettingNotFound.WithDetails(name)
	}
	if err != nil {
		return nil, storageError("read "+name, err)
	}

	v, err := domain.DecodeValue(data)
	if err != nil {
		return nil, storageError("decode "+name, err)
	}
	return v, nil
}

// Set encodes value and writes it under name, replacing any previous value.
func (s *Store) Set(name string, value any) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	data, err := domain.EncodeValue(value)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.dir, DefaultDirMode); err != nil {
		return storageError("create directory", err)
	}

	tmp, err := os.CreateTemp(s.dir, tempPattern)
	if err != nil {
		return storageError("create temp file", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return storageError("write "+name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return storageError("sync "+name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return storageError("close "+name, err)
	}
	if err := os.Chmod(tempPath, DefaultFileMode); err != nil {
		os.Remove(tempPath)
		return storageError("chmod "+name, err)
	}
	if err := os.Rename(tempPath, s.Path(name)); err != nil {
		os.Remove(tempPath)
		return storageError("rename "+name, err)
	}
	return nil
}

// Names returns the names of all settings in the directory, sorted
// lexicographically. Entries that are not "<name>.json" regular files are
// ignored.
func (s *Store) Names() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrDirNotFound.WithDetails(s.dir)
	}
	if err != nil {
		return nil, storageError("read directory", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := domain.NameFromFile(e.Name()); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func storageError(op string, err error) error {
	return domain.ErrStorage.WithDetails(op).WithCause(err)
}
