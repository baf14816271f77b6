package photosynthesis

import "github.com/dlorenzetti/greensim_project/internal/model/entities"

// ComputeRate applies Blackman's law: the photosynthesis rate equals the
// minimum of the three normalized efficiencies. Raising a factor that is
// not the minimum has zero marginal effect, like lengthening a link that
// is not the weakest in a chain.
func ComputeRate(f entities.EnvironmentalFactors) entities.RateResult {
	n := Normalize(f)
	return entities.RateResult{
		Rate:       n.Min(),
		Normalized: n,
	}
}
