package entities

// DayRecord is one simulated day. Records are immutable once appended
// to a trajectory.
type DayRecord struct {
	Day               int     `json:"day"` // 1-based
	Rate              float64 `json:"rate"`
	Biomass           float64 `json:"biomass"`
	DailyGain         float64 `json:"daily_gain"`
	LimitingFactor    Factor  `json:"limiting_factor"`
	StressLevel       float64 `json:"stress_level"`
	EfficiencyPercent int     `json:"efficiency_percent"`
}

// GrowthTrajectory is the chronological sequence of day records produced
// by a single simulation run. Each run owns its own trajectory.
type GrowthTrajectory []DayRecord

// TrajectorySummary aggregates a completed trajectory.
type TrajectorySummary struct {
	Days                   int     `json:"days"`
	AvgEfficiencyPercent   float64 `json:"avg_efficiency_percent"`
	MinEfficiencyPercent   int     `json:"min_efficiency_percent"`
	MaxEfficiencyPercent   int     `json:"max_efficiency_percent"`
	InitialBiomass         float64 `json:"initial_biomass"`
	FinalBiomass           float64 `json:"final_biomass"`
	TotalGrowth            float64 `json:"total_growth"`
	GrowthPercent          float64 `json:"growth_percent"`
	DominantLimitingFactor Factor  `json:"dominant_limiting_factor"`
}

// ComparisonReport is the outcome of running two scenarios over the same
// horizon. BetterScenario is "base", "alternative", or empty on a tie.
type ComparisonReport struct {
	Base               TrajectorySummary `json:"base"`
	Alternative        TrajectorySummary `json:"alternative"`
	FinalBiomassDelta  float64           `json:"final_biomass_delta"`
	ImprovementPercent float64           `json:"improvement_percent"`
	BetterScenario     string            `json:"better_scenario,omitempty"`
}
