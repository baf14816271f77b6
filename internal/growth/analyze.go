package growth

import "github.com/dlorenzetti/greensim_project/internal/model/entities"

// AnalyzeTrajectory aggregates a completed trajectory. The initial
// biomass is recovered from the first record (biomass minus that day's
// gain). An empty trajectory yields a zero summary.
func AnalyzeTrajectory(trajectory entities.GrowthTrajectory) entities.TrajectorySummary {
	if len(trajectory) == 0 {
		return entities.TrajectorySummary{}
	}

	first := trajectory[0]
	last := trajectory[len(trajectory)-1]
	initial := round2(first.Biomass - first.DailyGain)

	sum := 0
	minEff := first.EfficiencyPercent
	maxEff := first.EfficiencyPercent
	for _, rec := range trajectory {
		sum += rec.EfficiencyPercent
		if rec.EfficiencyPercent < minEff {
			minEff = rec.EfficiencyPercent
		}
		if rec.EfficiencyPercent > maxEff {
			maxEff = rec.EfficiencyPercent
		}
	}

	total := round2(last.Biomass - initial)
	pct := 0.0
	if initial > 0 {
		pct = round2(total / initial * 100)
	}

	return entities.TrajectorySummary{
		Days:                   len(trajectory),
		AvgEfficiencyPercent:   round2(float64(sum) / float64(len(trajectory))),
		MinEfficiencyPercent:   minEff,
		MaxEfficiencyPercent:   maxEff,
		InitialBiomass:         initial,
		FinalBiomass:           last.Biomass,
		TotalGrowth:            total,
		GrowthPercent:          pct,
		DominantLimitingFactor: dominantFactor(trajectory),
	}
}

// dominantFactor returns the most frequent limiting factor across the
// trajectory; ties break toward the factor that appeared first.
func dominantFactor(trajectory entities.GrowthTrajectory) entities.Factor {
	counts := make(map[entities.Factor]int)
	var order []entities.Factor
	for _, rec := range trajectory {
		if counts[rec.LimitingFactor] == 0 {
			order = append(order, rec.LimitingFactor)
		}
		counts[rec.LimitingFactor]++
	}

	best := order[0]
	for _, f := range order[1:] {
		if counts[f] > counts[best] {
			best = f
		}
	}
	return best
}

// CompareScenarios runs two trajectories over the same horizon with the
// default initial biomass and reports the final-biomass delta. The
// scenario ending with higher biomass is labeled better; equal finals
// leave BetterScenario empty.
func CompareScenarios(baseFactors, altFactors entities.EnvironmentalFactors, days int) entities.ComparisonReport {
	base := AnalyzeTrajectory(SimulateGrowth(baseFactors, days, DefaultInitialBiomass))
	alt := AnalyzeTrajectory(SimulateGrowth(altFactors, days, DefaultInitialBiomass))

	delta := round2(alt.FinalBiomass - base.FinalBiomass)
	improvement := 0.0
	if base.FinalBiomass > 0 {
		improvement = round2(delta / base.FinalBiomass * 100)
	}

	report := entities.ComparisonReport{
		Base:               base,
		Alternative:        alt,
		FinalBiomassDelta:  delta,
		ImprovementPercent: improvement,
	}
	switch {
	case delta > 0:
		report.BetterScenario = "alternative"
	case delta < 0:
		report.BetterScenario = "base"
	}
	return report
}
