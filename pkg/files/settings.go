package files

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

// ReadSettings loads settings from path. A missing file yields the defaults.
func ReadSettings(path string) (*models.Settings, error) {
	if path == "" {
		path = SettingsFile
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	settings.ApplyDefaults()

	return settings, nil
}

// WriteSettings stores settings at path
func WriteSettings(path string, settings *models.Settings) error {
	if path == "" {
		path = SettingsFile
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, documentPermission); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
