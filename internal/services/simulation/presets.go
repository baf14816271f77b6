package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dlorenzetti/greensim_project/internal/model"
)

// LoadPresets reads the scenario catalog from a JSON file once at
// startup. The returned slice is treated as immutable reference data.
func LoadPresets(path string) ([]model.ScenarioPreset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	var presets []model.ScenarioPreset
	if err := json.Unmarshal(raw, &presets); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for i, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d has no name", i)
		}
	}
	return presets, nil
}
