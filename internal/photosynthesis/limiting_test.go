package photosynthesis

import (
	"strings"
	"testing"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
)

func TestIdentifyLimitingFactor(t *testing.T) {
	cases := []struct {
		name       string
		normalized entities.NormalizedFactors
		factor     entities.Factor
		severity   entities.Severity
	}{
		{"light severe", entities.NormalizedFactors{Light: 0.1, CO2: 0.9, Temperature: 0.8}, entities.FactorLight, entities.SeveritySevere},
		{"co2 moderate", entities.NormalizedFactors{Light: 0.9, CO2: 0.45, Temperature: 0.8}, entities.FactorCO2, entities.SeverityModerate},
		{"temperature mild", entities.NormalizedFactors{Light: 0.9, CO2: 0.95, Temperature: 0.7}, entities.FactorTemperature, entities.SeverityMild},
		{"boundary 0.3 is moderate", entities.NormalizedFactors{Light: 0.3, CO2: 0.9, Temperature: 0.9}, entities.FactorLight, entities.SeverityModerate},
		{"boundary 0.6 is mild", entities.NormalizedFactors{Light: 0.6, CO2: 0.9, Temperature: 0.9}, entities.FactorLight, entities.SeverityMild},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			report := IdentifyLimitingFactor(c.normalized)
			if report.Factor != c.factor {
				t.Fatalf("factor = %s, want %s", report.Factor, c.factor)
			}
			if report.Severity != c.severity {
				t.Fatalf("severity = %s, want %s", report.Severity, c.severity)
			}
			if report.Value != c.normalized.Min() {
				t.Fatalf("value = %v, want min %v", report.Value, c.normalized.Min())
			}
		})
	}
}

func TestTieBreakOrder(t *testing.T) {
	// three-way tie: temperature wins
	report := IdentifyLimitingFactor(entities.NormalizedFactors{Light: 0.5, CO2: 0.5, Temperature: 0.5})
	if report.Factor != entities.FactorTemperature {
		t.Fatalf("three-way tie resolved to %s, want temperature", report.Factor)
	}
	// light/co2 tie: light wins
	report = IdentifyLimitingFactor(entities.NormalizedFactors{Light: 0.4, CO2: 0.4, Temperature: 0.9})
	if report.Factor != entities.FactorLight {
		t.Fatalf("light/co2 tie resolved to %s, want light", report.Factor)
	}
}

func TestExplainLimitationDistinguishesColdFromHot(t *testing.T) {
	report := entities.LimitingFactorReport{Factor: entities.FactorTemperature, Severity: entities.SeveritySevere, Value: 0.05}

	cold := ExplainLimitation(report, entities.EnvironmentalFactors{Light: 500, CO2: 400, Temperature: 2})
	hot := ExplainLimitation(report, entities.EnvironmentalFactors{Light: 500, CO2: 400, Temperature: 45})
	if cold == hot {
		t.Fatalf("cold and hot limitation share an explanation: %q", cold)
	}
	if !strings.Contains(cold, "cold") {
		t.Fatalf("cold explanation %q does not mention cold", cold)
	}
	if !strings.Contains(hot, "heat") {
		t.Fatalf("hot explanation %q does not mention heat", hot)
	}
}

func TestExplainLimitationLightSevere(t *testing.T) {
	report := entities.LimitingFactorReport{Factor: entities.FactorLight, Severity: entities.SeveritySevere, Value: 0.1}
	got := ExplainLimitation(report, entities.EnvironmentalFactors{Light: 20, CO2: 400, Temperature: 25})
	want := "insufficient photon capture halts light-dependent reactions"
	if got != want {
		t.Fatalf("explanation = %q, want %q", got, want)
	}
}
