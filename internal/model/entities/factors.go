package entities

// Factor identifies one of the three environmental inputs of the model.
type Factor string

const (
	FactorLight       Factor = "light"
	FactorCO2         Factor = "co2"
	FactorTemperature Factor = "temperature"
)

// Severity classifies how badly the limiting factor depresses the rate.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Priority ranks how urgently a recommendation should be acted on.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// EnvironmentalFactors holds one raw environmental reading.
// Units are fixed system-wide: light in µmol/m²/s (photon flux),
// co2 in ppm, temperature in °C. Percentage scales must be converted
// before a reading enters the model.
type EnvironmentalFactors struct {
	Light       float64 `json:"light"`       // µmol/m²/s
	CO2         float64 `json:"co2"`         // ppm
	Temperature float64 `json:"temperature"` // °C
}

// NormalizedFactors holds the per-factor efficiencies, each in [0,1].
// It is always derived from EnvironmentalFactors, never stored on its own.
type NormalizedFactors struct {
	Light       float64 `json:"light"`
	CO2         float64 `json:"co2"`
	Temperature float64 `json:"temperature"`
}

// Min returns the smallest of the three efficiencies, the value that
// bounds the whole process under Blackman's law.
func (n NormalizedFactors) Min() float64 {
	m := n.Light
	if n.CO2 < m {
		m = n.CO2
	}
	if n.Temperature < m {
		m = n.Temperature
	}
	return m
}
