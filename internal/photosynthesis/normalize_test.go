package photosynthesis

import (
	"math"
	"testing"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
)

func TestNormalizeLightCurveShape(t *testing.T) {
	if got := NormalizeLight(0); got != 0 {
		t.Fatalf("NormalizeLight(0) = %v, want 0", got)
	}
	// strictly increasing
	prev := 0.0
	for _, l := range []float64{50, 100, 250, 500, 1000, 1500} {
		eff := NormalizeLight(l)
		if eff <= prev {
			t.Fatalf("NormalizeLight not strictly increasing at %v: %v <= %v", l, eff, prev)
		}
		if eff > 1 {
			t.Fatalf("NormalizeLight(%v) = %v exceeds 1", l, eff)
		}
		prev = eff
	}
	// saturated past three times the optimum
	if eff := NormalizeLight(3 * OptimalLight); eff < 0.99 {
		t.Fatalf("NormalizeLight(3*optimum) = %v, want >= 0.99", eff)
	}
}

func TestNormalizeLightClampsNegative(t *testing.T) {
	if got := NormalizeLight(-100); got != 0 {
		t.Fatalf("NormalizeLight(-100) = %v, want 0", got)
	}
}

func TestNormalizeCO2CurveShape(t *testing.T) {
	if got := NormalizeCO2(0); got != 0 {
		t.Fatalf("NormalizeCO2(0) = %v, want 0", got)
	}
	prev := -1.0
	for _, c := range []float64{50, 150, 250, 400, 800, 2000} {
		eff := NormalizeCO2(c)
		if eff < prev {
			t.Fatalf("NormalizeCO2 decreasing at %v: %v < %v", c, eff, prev)
		}
		if eff > 1 {
			t.Fatalf("NormalizeCO2(%v) = %v exceeds 1", c, eff)
		}
		prev = eff
	}
	if eff := NormalizeCO2(OptimalCO2); eff < 0.9 {
		t.Fatalf("NormalizeCO2(optimum) = %v, want near the plateau", eff)
	}
	if got := NormalizeCO2(-50); got != 0 {
		t.Fatalf("NormalizeCO2(-50) = %v, want 0", got)
	}
}

func TestNormalizeTemperatureBell(t *testing.T) {
	if got := NormalizeTemperature(OptimalTemperature); got != 1 {
		t.Fatalf("NormalizeTemperature(optimum) = %v, want 1", got)
	}
	// symmetric around the optimum
	lo := NormalizeTemperature(OptimalTemperature - 5)
	hi := NormalizeTemperature(OptimalTemperature + 5)
	if math.Abs(lo-hi) > 1e-12 {
		t.Fatalf("bell not symmetric: %v vs %v", lo, hi)
	}
	if lo >= 1 {
		t.Fatalf("off-optimum efficiency %v should be below 1", lo)
	}
}

func TestNormalizeTemperatureViableFloor(t *testing.T) {
	for _, temp := range []float64{0, 4.9, 42.1, 60} {
		if got := NormalizeTemperature(temp); got != nonViableFloor {
			t.Fatalf("NormalizeTemperature(%v) = %v, want floor %v", temp, got, nonViableFloor)
		}
	}
	// inside the viable range the bell never drops below the floor
	if got := NormalizeTemperature(MinViableTemperature); got < nonViableFloor {
		t.Fatalf("NormalizeTemperature(min viable) = %v below floor", got)
	}
}

func TestNormalizeRangeInvariant(t *testing.T) {
	cases := []entities.EnvironmentalFactors{
		{Light: 0, CO2: 0, Temperature: 0},
		{Light: 500, CO2: 400, Temperature: 25},
		{Light: 1e6, CO2: 1e6, Temperature: 1e3},
		{Light: -5, CO2: -5, Temperature: -5},
	}
	for _, f := range cases {
		n := Normalize(f)
		for name, v := range map[string]float64{"light": n.Light, "co2": n.CO2, "temperature": n.Temperature} {
			if v < 0 || v > 1 {
				t.Fatalf("factors %+v: normalized %s = %v out of [0,1]", f, name, v)
			}
		}
	}
}
