package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	data := `[
  {"name": "desert noon", "description": "hot and bright", "factors": {"light": 1800, "co2": 380, "temperature": 41}},
  {"name": "winter greenhouse", "description": "cold and dim", "factors": {"light": 120, "co2": 420, "temperature": 12}}
]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("got %d presets, want 2", len(presets))
	}
	if presets[0].Factors.Light != 1800 || presets[1].Factors.Temperature != 12 {
		t.Fatalf("preset factors mangled: %+v", presets)
	}
}

func TestLoadPresetsRejectsUnnamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	if err := os.WriteFile(path, []byte(`[{"description": "nameless"}]`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadPresets(path); err == nil {
		t.Fatal("unnamed preset accepted")
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	if _, err := LoadPresets(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing file accepted")
	}
}
