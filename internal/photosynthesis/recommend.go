package photosynthesis

import (
	"fmt"
	"math"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
)

// Raw-value breakpoints selecting the recommendation tier per factor.
const (
	lightCriticalBelow = 100.0
	lightHighBelow     = 250.0
	lightMediumBelow   = 450.0

	co2CriticalBelow = 150.0
	co2HighBelow     = 250.0
	co2MediumBelow   = 380.0

	tempHighBelow   = 15.0
	tempHighAbove   = 35.0
	tempMediumBelow = 22.0
	tempMediumAbove = 28.0
)

// Recommend builds the corrective action for the current limiting
// factor. Tiers are chosen on the raw value, so the advice names a
// concrete physical delta, not a normalized score.
func Recommend(limiting entities.Factor, raw entities.EnvironmentalFactors) entities.Recommendation {
	switch limiting {
	case entities.FactorLight:
		return recommendLight(raw.Light)
	case entities.FactorCO2:
		return recommendCO2(raw.CO2)
	default:
		return recommendTemperature(raw.Temperature)
	}
}

func recommendLight(light float64) entities.Recommendation {
	if light < 0 {
		light = 0
	}
	rec := entities.Recommendation{AppliesTo: entities.FactorLight}
	switch {
	case light < lightCriticalBelow:
		rec.Priority = entities.PriorityCritical
		rec.TargetValue = ref(OptimalLight)
		rec.Action = fmt.Sprintf("raise light by %.0f µmol/m²/s to reach %.0f; photon flux is critically low", OptimalLight-light, OptimalLight)
	case light < lightHighBelow:
		rec.Priority = entities.PriorityHigh
		rec.TargetValue = ref(OptimalLight)
		rec.Action = fmt.Sprintf("raise light by %.0f µmol/m²/s to reach %.0f", OptimalLight-light, OptimalLight)
	case light < lightMediumBelow:
		rec.Priority = entities.PriorityMedium
		rec.TargetValue = ref(OptimalLight)
		rec.Action = fmt.Sprintf("add roughly %.0f µmol/m²/s of supplemental light", OptimalLight-light)
	default:
		rec.Priority = entities.PriorityLow
		rec.Action = "hold light where it is; the response curve is near saturation"
	}
	return rec
}

func recommendCO2(co2 float64) entities.Recommendation {
	if co2 < 0 {
		co2 = 0
	}
	rec := entities.Recommendation{AppliesTo: entities.FactorCO2}
	switch {
	case co2 < co2CriticalBelow:
		rec.Priority = entities.PriorityCritical
		rec.TargetValue = ref(OptimalCO2)
		rec.Action = fmt.Sprintf("enrich co2 by %.0f ppm to reach %.0f; fixation is starved", OptimalCO2-co2, OptimalCO2)
	case co2 < co2HighBelow:
		rec.Priority = entities.PriorityHigh
		rec.TargetValue = ref(OptimalCO2)
		rec.Action = fmt.Sprintf("enrich co2 by %.0f ppm to reach %.0f", OptimalCO2-co2, OptimalCO2)
	case co2 < co2MediumBelow:
		rec.Priority = entities.PriorityMedium
		rec.TargetValue = ref(OptimalCO2)
		rec.Action = fmt.Sprintf("add roughly %.0f ppm of co2", OptimalCO2-co2)
	default:
		rec.Priority = entities.PriorityLow
		rec.Action = "hold co2 where it is; the curve has plateaued"
	}
	return rec
}

func recommendTemperature(temp float64) entities.Recommendation {
	rec := entities.Recommendation{AppliesTo: entities.FactorTemperature}
	delta := OptimalTemperature - temp
	switch {
	case temp < MinViableTemperature || temp > MaxViableTemperature:
		rec.Priority = entities.PriorityCritical
		rec.TargetValue = ref(OptimalTemperature)
		rec.Action = fmt.Sprintf("temperature %.1f°C is outside the viable range [%.0f, %.0f]; bring it to %.0f°C", temp, MinViableTemperature, MaxViableTemperature, OptimalTemperature)
	case temp < tempHighBelow:
		rec.Priority = entities.PriorityHigh
		rec.TargetValue = ref(OptimalTemperature)
		rec.Action = fmt.Sprintf("warm by %.1f°C toward %.0f°C", delta, OptimalTemperature)
	case temp > tempHighAbove:
		rec.Priority = entities.PriorityHigh
		rec.TargetValue = ref(OptimalTemperature)
		rec.Action = fmt.Sprintf("cool by %.1f°C toward %.0f°C", -delta, OptimalTemperature)
	case temp < tempMediumBelow:
		rec.Priority = entities.PriorityMedium
		rec.TargetValue = ref(OptimalTemperature)
		rec.Action = fmt.Sprintf("warm by %.1f°C toward %.0f°C", delta, OptimalTemperature)
	case temp > tempMediumAbove:
		rec.Priority = entities.PriorityMedium
		rec.TargetValue = ref(OptimalTemperature)
		rec.Action = fmt.Sprintf("cool by %.1f°C toward %.0f°C", -delta, OptimalTemperature)
	default:
		rec.Priority = entities.PriorityLow
		rec.Action = "hold temperature; it is close to the optimum"
	}
	return rec
}

// ValidateChange answers whether changing one factor to proposedValue
// would raise the rate, given which factor currently binds it.
func ValidateChange(factor entities.Factor, proposedValue float64, current entities.EnvironmentalFactors, currentLimiting entities.Factor) entities.ValidationResult {
	if factor != currentLimiting {
		return entities.ValidationResult{
			WillImprove: false,
			Reason: fmt.Sprintf("%s is not the limiting factor (%s is); by the law of limiting factors, adjusting an already-sufficient input cannot raise the rate",
				factor, currentLimiting),
		}
	}

	switch factor {
	case entities.FactorTemperature:
		// The bell curve means "better" is "closer to the optimum",
		// in either direction.
		cur := math.Abs(current.Temperature - OptimalTemperature)
		prop := math.Abs(proposedValue - OptimalTemperature)
		if prop < cur {
			return entities.ValidationResult{
				WillImprove: true,
				Reason:      fmt.Sprintf("moving temperature from %.1f°C to %.1f°C is strictly closer to the %.0f°C optimum", current.Temperature, proposedValue, OptimalTemperature),
			}
		}
		return entities.ValidationResult{
			WillImprove: false,
			Reason:      fmt.Sprintf("%.1f°C is no closer to the %.0f°C optimum than the current %.1f°C", proposedValue, OptimalTemperature, current.Temperature),
		}

	case entities.FactorLight:
		if proposedValue > current.Light {
			return entities.ValidationResult{
				WillImprove: true,
				Reason:      "the light response curve is monotone; more light raises efficiency until saturation",
			}
		}
		return entities.ValidationResult{
			WillImprove: false,
			Reason:      "lowering or holding light cannot raise a monotone response curve",
		}

	default: // co2
		if proposedValue > current.CO2 {
			return entities.ValidationResult{
				WillImprove: true,
				Reason:      "the co2 response curve is monotone; more co2 raises efficiency until the plateau",
			}
		}
		return entities.ValidationResult{
			WillImprove: false,
			Reason:      "lowering or holding co2 cannot raise a monotone response curve",
		}
	}
}

func ref(v float64) *float64 { return &v }
