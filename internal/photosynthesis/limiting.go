package photosynthesis

import "github.com/dlorenzetti/greensim_project/internal/model/entities"

// Severity buckets on the minimum normalized value.
const (
	severeBelow   = 0.3
	moderateBelow = 0.6
)

// Ties at the minimum break in fixed priority order: temperature first
// (biologically the most urgent failure), then light, then co2.
var tieBreakOrder = []entities.Factor{
	entities.FactorTemperature,
	entities.FactorLight,
	entities.FactorCO2,
}

// IdentifyLimitingFactor names the factor responsible for the minimum
// efficiency and classifies how severe the limitation is.
func IdentifyLimitingFactor(n entities.NormalizedFactors) entities.LimitingFactorReport {
	min := n.Min()

	factor := tieBreakOrder[0]
	for _, f := range tieBreakOrder {
		if factorValue(n, f) == min {
			factor = f
			break
		}
	}

	return entities.LimitingFactorReport{
		Factor:   factor,
		Severity: severityFor(min),
		Value:    min,
	}
}

func factorValue(n entities.NormalizedFactors, f entities.Factor) float64 {
	switch f {
	case entities.FactorLight:
		return n.Light
	case entities.FactorCO2:
		return n.CO2
	default:
		return n.Temperature
	}
}

func severityFor(v float64) entities.Severity {
	switch {
	case v < severeBelow:
		return entities.SeveritySevere
	case v < moderateBelow:
		return entities.SeverityModerate
	default:
		return entities.SeverityMild
	}
}

// Fixed explanation table per factor and severity. Temperature needs the
// raw reading as well: the bell curve is symmetric, so the normalized
// score alone cannot tell a cold snap from heat stress.
var limitationDetail = map[entities.Factor]map[entities.Severity]string{
	entities.FactorLight: {
		entities.SeveritySevere:   "insufficient photon capture halts light-dependent reactions",
		entities.SeverityModerate: "light-dependent reactions run well below capacity",
		entities.SeverityMild:     "light is slightly below saturation",
	},
	entities.FactorCO2: {
		entities.SeveritySevere:   "carbon fixation is starved; the Calvin cycle has almost no substrate",
		entities.SeverityModerate: "rubisco carboxylation is substrate-limited",
		entities.SeverityMild:     "co2 is slightly below the enrichment optimum",
	},
}

var temperatureDetailCold = map[entities.Severity]string{
	entities.SeveritySevere:   "cold has all but stopped enzymatic activity",
	entities.SeverityModerate: "low temperature slows enzyme kinetics",
	entities.SeverityMild:     "temperature is a little below the optimum",
}

var temperatureDetailHot = map[entities.Severity]string{
	entities.SeveritySevere:   "heat stress is denaturing enzymes and closing stomata",
	entities.SeverityModerate: "excess heat degrades enzyme efficiency",
	entities.SeverityMild:     "temperature is a little above the optimum",
}

// ExplainLimitation returns the fixed explanatory string for a report.
// The raw factors distinguish cold from hot temperature limitation.
func ExplainLimitation(r entities.LimitingFactorReport, raw entities.EnvironmentalFactors) string {
	if r.Factor == entities.FactorTemperature {
		if raw.Temperature < OptimalTemperature {
			return temperatureDetailCold[r.Severity]
		}
		return temperatureDetailHot[r.Severity]
	}
	return limitationDetail[r.Factor][r.Severity]
}
