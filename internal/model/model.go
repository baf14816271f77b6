package model

import (
	"github.com/dlorenzetti/greensim_project/internal/model/entities"
	"github.com/dlorenzetti/greensim_project/internal/model/messages"
)

// Aliases exposing the common types to the services.

type (
	Factor               = entities.Factor
	Severity             = entities.Severity
	Priority             = entities.Priority
	EnvironmentalFactors = entities.EnvironmentalFactors
	NormalizedFactors    = entities.NormalizedFactors
	RateResult           = entities.RateResult
	LimitingFactorReport = entities.LimitingFactorReport
	Recommendation       = entities.Recommendation
	ValidationResult     = entities.ValidationResult
	DayRecord            = entities.DayRecord
	GrowthTrajectory     = entities.GrowthTrajectory
	TrajectorySummary    = entities.TrajectorySummary
	ComparisonReport     = entities.ComparisonReport
	ScenarioPreset       = entities.ScenarioPreset
	EnvironmentReading   = messages.EnvironmentReading
	RateEvaluationEvent  = messages.RateEvaluationEvent
)

const (
	FactorLight       = entities.FactorLight
	FactorCO2         = entities.FactorCO2
	FactorTemperature = entities.FactorTemperature
)
