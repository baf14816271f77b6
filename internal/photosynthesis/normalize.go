// Package photosynthesis implements the rate model: per-factor response
// curves, Blackman's law of limiting factors, limiting-factor analysis
// and corrective recommendations. Everything here is a pure function of
// its numeric arguments.
package photosynthesis

import (
	"math"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
)

// Reference optima and curve parameters. Tuning happens here, not in the
// formulas.
const (
	OptimalLight   = 500.0 // µmol/m²/s
	lightSteepness = 2.0   // saturation ≈1 past 3× the optimum

	OptimalCO2         = 400.0 // ppm
	co2SaturationScale = 150.0 // ppm, e-folding of the saturation term

	OptimalTemperature   = 25.0 // °C
	temperatureSpread    = 7.5  // °C, bell-curve sigma
	MinViableTemperature = 5.0  // °C
	MaxViableTemperature = 42.0 // °C

	// Outside the viable range efficiency is pinned to a small positive
	// floor, not zero: "non-viable" must stay distinguishable from an
	// undefined input and must never produce a hard-zero minimum that a
	// downstream division could trip over.
	nonViableFloor = 0.05
)

// NormalizeLight maps raw photon flux to [0,1]. The curve rises steeply
// from zero and saturates; by roughly three times the optimum it is
// indistinguishable from 1.
func NormalizeLight(raw float64) float64 {
	if raw < 0 {
		raw = 0
	}
	return clamp01(1 - math.Exp(-lightSteepness*raw/OptimalLight))
}

// NormalizeCO2 maps raw concentration to [0,1]: a linear ramp toward the
// reference optimum damped by an exponential saturation term, so the
// curve climbs fast at low concentrations and plateaus near the optimum.
func NormalizeCO2(raw float64) float64 {
	if raw < 0 {
		raw = 0
	}
	ramp := raw / OptimalCO2
	if ramp > 1 {
		ramp = 1
	}
	return clamp01(ramp * (1 - math.Exp(-raw/co2SaturationScale)))
}

// NormalizeTemperature maps raw temperature to [nonViableFloor,1]: a
// bell curve centred on the optimum, decaying symmetrically on both
// sides. Below MinViableTemperature or above MaxViableTemperature the
// efficiency is pinned to the floor.
func NormalizeTemperature(raw float64) float64 {
	if raw < 0 {
		raw = 0
	}
	if raw < MinViableTemperature || raw > MaxViableTemperature {
		return nonViableFloor
	}
	d := raw - OptimalTemperature
	eff := math.Exp(-(d * d) / (2 * temperatureSpread * temperatureSpread))
	if eff < nonViableFloor {
		eff = nonViableFloor
	}
	return eff
}

// Normalize converts one raw reading into per-factor efficiencies.
func Normalize(f entities.EnvironmentalFactors) entities.NormalizedFactors {
	return entities.NormalizedFactors{
		Light:       NormalizeLight(f.Light),
		CO2:         NormalizeCO2(f.CO2),
		Temperature: NormalizeTemperature(f.Temperature),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
