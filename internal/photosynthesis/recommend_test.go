package photosynthesis

import (
	"testing"

	"github.com/dlorenzetti/greensim_project/internal/model/entities"
)

func TestRecommendTiers(t *testing.T) {
	cases := []struct {
		name     string
		factor   entities.Factor
		raw      entities.EnvironmentalFactors
		priority entities.Priority
		target   float64 // 0 means nil target expected
	}{
		{"light critical", entities.FactorLight, entities.EnvironmentalFactors{Light: 50}, entities.PriorityCritical, OptimalLight},
		{"light high", entities.FactorLight, entities.EnvironmentalFactors{Light: 150}, entities.PriorityHigh, OptimalLight},
		{"light medium", entities.FactorLight, entities.EnvironmentalFactors{Light: 350}, entities.PriorityMedium, OptimalLight},
		{"light low", entities.FactorLight, entities.EnvironmentalFactors{Light: 480}, entities.PriorityLow, 0},
		{"co2 critical", entities.FactorCO2, entities.EnvironmentalFactors{CO2: 100}, entities.PriorityCritical, OptimalCO2},
		{"co2 low", entities.FactorCO2, entities.EnvironmentalFactors{CO2: 390}, entities.PriorityLow, 0},
		{"temp out of range", entities.FactorTemperature, entities.EnvironmentalFactors{Temperature: 48}, entities.PriorityCritical, OptimalTemperature},
		{"temp cold high", entities.FactorTemperature, entities.EnvironmentalFactors{Temperature: 10}, entities.PriorityHigh, OptimalTemperature},
		{"temp hot medium", entities.FactorTemperature, entities.EnvironmentalFactors{Temperature: 30}, entities.PriorityMedium, OptimalTemperature},
		{"temp low", entities.FactorTemperature, entities.EnvironmentalFactors{Temperature: 24}, entities.PriorityLow, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := Recommend(c.factor, c.raw)
			if rec.AppliesTo != c.factor {
				t.Fatalf("applies_to = %s, want %s", rec.AppliesTo, c.factor)
			}
			if rec.Priority != c.priority {
				t.Fatalf("priority = %s, want %s", rec.Priority, c.priority)
			}
			if c.target == 0 {
				if rec.TargetValue != nil {
					t.Fatalf("target = %v, want nil", *rec.TargetValue)
				}
			} else if rec.TargetValue == nil || *rec.TargetValue != c.target {
				t.Fatalf("target = %v, want %v", rec.TargetValue, c.target)
			}
			if rec.Action == "" {
				t.Fatal("empty action text")
			}
		})
	}
}

func TestValidateChangeRejectsNonLimitingFactor(t *testing.T) {
	current := entities.EnvironmentalFactors{Light: 100, CO2: 400, Temperature: 25}
	res := ValidateChange(entities.FactorCO2, 600, current, entities.FactorLight)
	if res.WillImprove {
		t.Fatalf("co2 change approved while light is limiting: %+v", res)
	}
	if res.Reason == "" {
		t.Fatal("rejection carries no reason")
	}
}

func TestValidateChangeTemperatureUsesDistanceToOptimum(t *testing.T) {
	current := entities.EnvironmentalFactors{Light: 500, CO2: 400, Temperature: 35}

	// cooling toward the optimum helps even though the value decreases
	if res := ValidateChange(entities.FactorTemperature, 27, current, entities.FactorTemperature); !res.WillImprove {
		t.Fatalf("cooling 35 -> 27 rejected: %s", res.Reason)
	}
	// overshooting to the mirror distance does not
	if res := ValidateChange(entities.FactorTemperature, 15, current, entities.FactorTemperature); res.WillImprove {
		t.Fatal("overshoot to mirror distance accepted")
	}
}

func TestValidateChangeMonotoneFactors(t *testing.T) {
	current := entities.EnvironmentalFactors{Light: 100, CO2: 200, Temperature: 25}

	if res := ValidateChange(entities.FactorLight, 300, current, entities.FactorLight); !res.WillImprove {
		t.Fatalf("raising limiting light rejected: %s", res.Reason)
	}
	if res := ValidateChange(entities.FactorLight, 80, current, entities.FactorLight); res.WillImprove {
		t.Fatal("lowering limiting light accepted")
	}
	if res := ValidateChange(entities.FactorCO2, 300, current, entities.FactorCO2); !res.WillImprove {
		t.Fatalf("raising limiting co2 rejected: %s", res.Reason)
	}
}
