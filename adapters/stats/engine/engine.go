// Package engine is the probability engine for the two discrete
// finite-population sampling distributions, binomial and hypergeometric:
// model selection, exact combinatorial point probabilities, mass tables, and
// closed-form descriptive statistics with finite-population correction.
//
// Probability computation is exact: combinations are evaluated in big-integer
// arithmetic and cumulative figures come from direct summation of point
// masses, never from asymptotic approximations.
package engine

import (
	"math"

	"godiscrete/domain/dist"
	"godiscrete/ports"
)

// Engine bundles the calculators behind the DistributionEngine port. It holds
// no state; concurrent callers need no coordination.
type Engine struct{}

// New creates the probability engine.
func New() *Engine {
	return &Engine{}
}

var _ ports.DistributionEngine = (*Engine)(nil)

func (e *Engine) SelectModel(n, N int) (dist.ModelChoice, error) {
	return SelectModel(n, N)
}

func (e *Engine) PopulationMode(n, N int) dist.PopulationMode {
	return ResolvePopulationMode(n, N)
}

func (e *Engine) PointProbability(N, K, n, x int, model dist.Model) (float64, error) {
	return PointProbability(N, K, n, x, model)
}

func (e *Engine) RangeProbabilities(N, K, n, xMax int, model dist.Model) (dist.MassTable, error) {
	return RangeProbabilities(N, K, n, xMax, model)
}

func (e *Engine) AllProbabilities(N, K, n int, model dist.Model) (dist.MassTable, error) {
	return AllProbabilities(N, K, n, model)
}

// Moments derives the full descriptive summary from population counts and an
// already-computed mass table.
func (e *Engine) Moments(N, K, n int, model dist.Model, table dist.MassTable) (dist.Summary, error) {
	mean, err := DerivedMean(n, K, N)
	if err != nil {
		return dist.Summary{}, err
	}

	median, err := Median(table)
	if err != nil {
		return dist.Summary{}, err
	}

	summary := dist.Summary{
		Model:          model,
		Mean:           mean,
		Median:         float64(median),
		MeanMedianSkew: dist.SkewFromMeanMedian(mean, float64(median)),
	}

	p := float64(K) / float64(N)
	switch model {
	case dist.ModelHypergeometric:
		summary.Variance = HypergeometricVariance(n, K, N)
		skew, skewLabel := HypergeometricSkewness(N, K, n)
		summary.Skewness = dist.SkewMeasure{Value: skew, Label: skewLabel}
		kurt, kurtLabel := HypergeometricKurtosis(N, K, n)
		summary.Kurtosis = dist.KurtosisMeasure{Value: kurt, Label: kurtLabel}
	default:
		mode := ResolvePopulationMode(n, N)
		summary.Variance = BinomialVariance(n, p, mode, N)
		skew, skewLabel := BinomialSkewness(n, p, mode, N)
		summary.Skewness = dist.SkewMeasure{Value: skew, Label: skewLabel}
		kurt, kurtLabel := BinomialKurtosis(n, p, mode, N)
		summary.Kurtosis = dist.KurtosisMeasure{Value: kurt, Label: kurtLabel}
	}

	summary.StdDev = math.Sqrt(summary.Variance)
	return summary, nil
}
