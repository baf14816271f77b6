package entities

// ScenarioPreset is a named environmental scenario supplied as static
// configuration. Presets are read-only reference data; the model never
// mutates them.
type ScenarioPreset struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Factors     EnvironmentalFactors `json:"factors"`
}
