package messages

import "time"

// EnvironmentReading is published by greenhouse sensor nodes (or the
// greenhouse simulator) for one zone. Light may arrive either as raw
// photon flux ("light") or, from older nodes, as a percentage of
// full-scale ("light_pct"); the telemetry decoder converts the latter
// before the reading enters the model.
type EnvironmentReading struct {
	GreenhouseID string    `json:"greenhouse_id"`
	ZoneID       string    `json:"zone_id"`
	Light        float64   `json:"light,omitempty"`     // µmol/m²/s
	LightPct     *float64  `json:"light_pct,omitempty"` // 0..100, legacy nodes
	CO2          float64   `json:"co2"`                 // ppm
	Temperature  float64   `json:"temperature"`         // °C
	Timestamp    time.Time `json:"timestamp"`
}
