package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"camodlib/config"
)

// SavePresetToJSON serializes a parameter/override preset to an indented
// JSON file at filePath, so a tuned run's vols/init_conc/params can be
// reused without re-typing them on the command line.
func SavePresetToJSON(overrides config.ModelOverrides, filePath string) error {
	data, err := json.MarshalIndent(overrides, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize preset to JSON: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON preset file %s: %w", filePath, err)
	}
	return nil
}

// LoadPresetFromJSON reads a parameter/override preset previously written by
// SavePresetToJSON.
func LoadPresetFromJSON(filePath string) (config.ModelOverrides, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return config.ModelOverrides{}, fmt.Errorf("JSON preset file %s not found: %w", filePath, err)
		}
		return config.ModelOverrides{}, fmt.Errorf("failed to read JSON preset file %s: %w", filePath, err)
	}

	var overrides config.ModelOverrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return config.ModelOverrides{}, fmt.Errorf("failed to unmarshal preset from JSON from %s: %w", filePath, err)
	}
	return overrides, nil
}
