// Package files owns the on-disk layout of a tokenpick project: the
// .tokenpick directory, the yaml settings file and the persisted
// recent-tokens entry.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tokenpick/tokenpick-terminal/pkg/models"
)

const (
	TokenpickDir = ".tokenpick"
	SettingsFile = "config.yaml"
	RecentFile   = "recent.json"
)

// InitProjectStructure creates the .tokenpick directory and writes the
// default settings file if none exists yet.
func InitProjectStructure() error {
	if err := os.MkdirAll(TokenpickDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", TokenpickDir, err)
	}

	settingsPath := filepath.Join(TokenpickDir, SettingsFile)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// ProjectExists reports whether the current directory holds a
// .tokenpick project.
func ProjectExists() bool {
	info, err := os.Stat(TokenpickDir)
	return err == nil && info.IsDir()
}

// RecentPath returns the path of the persisted recent-tokens entry.
func RecentPath() string {
	return filepath.Join(TokenpickDir, RecentFile)
}

// ReadSettings loads the settings file, falling back to defaults when
// the file is missing.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(filepath.Join(TokenpickDir, SettingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// WriteSettings persists the settings file.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(TokenpickDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", TokenpickDir, err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(filepath.Join(TokenpickDir, SettingsFile), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
