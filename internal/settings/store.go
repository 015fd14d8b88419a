package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/yamlutil"
)

// Store abstracts the host settings persistence capability:
// load a record, or persist one.
type Store interface {
	Load() (*Record, error)
	Save(*Record) error
}

// FileStore persists the settings record as a YAML file.
type FileStore struct {
	// Path overrides the resolved settings location when non-empty.
	Path string
}

// configDirName is the directory under the user config dir holding settings.
const configDirName = "go-chat2pdf"

// settingsFileName is the default settings file name (without extension).
const settingsFileName = "settings"

// Load reads the settings record from disk.
// Returns ErrSettingsNotFound when no file exists at any candidate
// location; callers are expected to fall back to Defaults().
func (s *FileStore) Load() (*Record, error) {
	path, err := s.resolve()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- settings path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	rec := Defaults()
	if err := yamlutil.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettingsParse, err)
	}

	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSettingsParse, err)
	}

	return rec, nil
}

// Save writes the settings record to disk, creating the config directory
// if needed.
func (s *FileStore) Save(rec *Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	path := s.Path
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolving config dir: %w", err)
		}
		path = filepath.Join(dir, configDirName, settingsFileName+".yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	data, err := yamlutil.Marshal(rec)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// resolve locates the settings file.
// An explicit Path wins; otherwise the current directory is tried before
// the user config directory, each with .yaml then .yml.
func (s *FileStore) resolve() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}

	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := settingsFileName + ext
		if fileutil.FileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, settingsFileName+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrSettingsNotFound, strings.Join(tried, ", "))
}

// LoadOrDefaults loads the record from the store, degrading to Defaults()
// on any failure. The returned bool reports whether stored settings were
// used.
func LoadOrDefaults(store Store) (*Record, bool) {
	if store == nil {
		return Defaults(), false
	}
	rec, err := store.Load()
	if err != nil {
		return Defaults(), false
	}
	return rec, true
}
