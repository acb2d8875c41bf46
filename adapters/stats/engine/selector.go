package engine

import (
	"godiscrete/domain/core"
	"godiscrete/domain/dist"
)

// Two thresholds govern two different decisions. They are easy to conflate
// and must not be: the 20% rule picks the distribution model, the 5% rule
// decides whether the binomial moment formulas need finite-population
// correction.
const (
	// HypergeometricThreshold is the sample/population ratio at or above
	// which sampling without replacement is material and the hypergeometric
	// model applies. The comparison is inclusive.
	HypergeometricThreshold = 0.20

	// InfinitePopulationThreshold is the sample/population ratio at or below
	// which a finite population behaves as infinite for the pure-binomial
	// entry points.
	InfinitePopulationThreshold = 0.05
)

// SelectModel decides between the binomial and hypergeometric models from the
// sample/population ratio. Hypergeometric is selected when n/N >= 0.20.
func SelectModel(n, N int) (dist.ModelChoice, error) {
	if N <= 0 {
		return dist.ModelChoice{}, core.NewInvalidParameters("population size N must be greater than 0, got %d", N)
	}
	if n <= 0 {
		return dist.ModelChoice{}, core.NewInvalidParameters("sample size n must be greater than 0, got %d", n)
	}
	if n > N {
		return dist.ModelChoice{}, core.NewInvalidParameters("sample size n=%d cannot exceed population size N=%d", n, N)
	}

	ratio := float64(n) / float64(N)
	choice := dist.ModelChoice{Model: dist.ModelBinomial, Ratio: ratio}
	if ratio >= HypergeometricThreshold {
		choice.Model = dist.ModelHypergeometric
	}
	return choice, nil
}

// InfinitePopulation reports whether the population counts as infinite for
// the binomial moment formulas: N unspecified (<= 0), or n <= 0.05 * N.
func InfinitePopulation(n, N int) bool {
	if N <= 0 {
		return true
	}
	return float64(n) <= InfinitePopulationThreshold*float64(N)
}

// ResolvePopulationMode applies the 5% rule and returns the explicit
// correction mode the moment calculators take, so the infinite-vs-finite
// split is a parameter rather than a hidden code path.
func ResolvePopulationMode(n, N int) dist.PopulationMode {
	if InfinitePopulation(n, N) {
		return dist.PopulationInfinite
	}
	return dist.PopulationFinite
}
