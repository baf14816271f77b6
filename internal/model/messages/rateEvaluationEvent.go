package messages

import (
	"time"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
)

// RateEvaluationEvent is published by the telemetry service after it has
// run one EnvironmentReading through the rate model.
type RateEvaluationEvent struct {
	EvaluationID      string            `json:"evaluation_id"`
	GreenhouseID      string            `json:"greenhouse_id"`
	ZoneID            string            `json:"zone_id"`
	Rate              float64           `json:"rate"`
	EfficiencyPercent int               `json:"efficiency_percent"`
	LimitingFactor    entities.Factor   `json:"limiting_factor"`
	Severity          entities.Severity `json:"severity"`
	Timestamp         time.Time         `json:"timestamp"`
}
