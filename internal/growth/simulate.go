// Package growth drives the photosynthesis model through multi-day
// simulations: biomass integration, stress accumulation/recovery,
// trajectory statistics and scenario comparison. Like the rate model it
// is deterministic: identical inputs produce bit-identical trajectories.
package growth

import (
	"math"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
	"github.com/dlorenzetti/greensim_project/internal/photosynthesis"
)

const (
	// DefaultInitialBiomass is the reference starting biomass used when
	// the caller does not supply one.
	DefaultInitialBiomass = 100.0

	// referenceDailyGrowth is the daily growth fraction at rate 1.
	referenceDailyGrowth = 0.05

	// Stress accumulates whenever the rate drops below this threshold
	// and decays toward zero otherwise.
	stressThreshold    = 0.4
	stressRecoveryStep = 0.1

	// Accumulated stress penalizes the day's growth, never more than
	// the cap.
	stressPenaltyCoeff = 0.1
	maxStressPenalty   = 0.30
)

// ConditionFunc supplies the environmental factors for a given day
// (1-based), enabling day/night or seasonal scenarios.
type ConditionFunc func(day int) entities.EnvironmentalFactors

// SimulateGrowth runs the day loop under constant conditions.
// A non-positive initialBiomass falls back to DefaultInitialBiomass;
// days <= 0 yields an empty trajectory.
func SimulateGrowth(factors entities.EnvironmentalFactors, days int, initialBiomass float64) entities.GrowthTrajectory {
	return SimulateVariableConditions(func(int) entities.EnvironmentalFactors { return factors }, days, initialBiomass)
}

// SimulateVariableConditions is the general entry point: an explicit
// fold over day indices carrying (biomass, stress). No state survives
// the call, so independent runs can be computed in parallel by the
// caller.
func SimulateVariableConditions(conditions ConditionFunc, days int, initialBiomass float64) entities.GrowthTrajectory {
	if initialBiomass <= 0 {
		initialBiomass = DefaultInitialBiomass
	}
	if days <= 0 {
		return entities.GrowthTrajectory{}
	}

	trajectory := make(entities.GrowthTrajectory, 0, days)
	biomass := initialBiomass
	stress := 0.0

	for day := 1; day <= days; day++ {
		res := photosynthesis.ComputeRate(conditions(day))
		report := photosynthesis.IdentifyLimitingFactor(res.Normalized)

		gain := biomass * res.Rate * referenceDailyGrowth
		if res.Rate < stressThreshold {
			stress += stressThreshold - res.Rate
			penalty := math.Min(stress*stressPenaltyCoeff, maxStressPenalty)
			gain -= gain * penalty
		} else {
			stress = math.Max(0, stress-stressRecoveryStep)
		}
		biomass += gain

		trajectory = append(trajectory, entities.DayRecord{
			Day:               day,
			Rate:              round3(res.Rate),
			Biomass:           round2(biomass),
			DailyGain:         round2(gain),
			LimitingFactor:    report.Factor,
			StressLevel:       round2(stress),
			EfficiencyPercent: int(math.Round(res.Rate * 100)),
		})
	}
	return trajectory
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
