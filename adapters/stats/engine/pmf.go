package engine

import (
	"math"

	"godiscrete/domain/core"
	"godiscrete/domain/dist"
	"godiscrete/internal/validation"
)

// PointProbability computes P(X=x) under the given model from population
// counts. The binomial form derives p = K/N. Parameters are validated before
// any arithmetic runs; a single-point call with x > K or x > n fails rather
// than returning 0.
func PointProbability(N, K, n, x int, model dist.Model) (float64, error) {
	if err := validation.CheckMassParams(N, K, n, x); err != nil {
		return 0, err
	}

	switch model {
	case dist.ModelHypergeometric:
		return hypergeometricPMF(N, K, n, x), nil
	case dist.ModelBinomial:
		return binomialDerivedPMF(N, K, n, x), nil
	default:
		return 0, core.NewInvalidParameters("unknown model %q, use %q or %q", model, dist.ModelBinomial, dist.ModelHypergeometric)
	}
}

// hypergeometricPMF evaluates C(K,x)*C(N-K,n-x)/C(N,n) exactly. Outside the
// support (x < 0, x > n, x > K, or n-x > N-K) a combination term is 0 and so
// is the mass.
func hypergeometricPMF(N, K, n, x int) float64 {
	return combinationRatio(K, x, N-K, n-x, N, n)
}

// binomialDerivedPMF evaluates C(n,x)*p^x*q^(n-x) with p = K/N.
func binomialDerivedPMF(N, K, n, x int) float64 {
	p := float64(K) / float64(N)
	return binomialPMF(n, p, x)
}

func binomialPMF(n int, p float64, x int) float64 {
	if x < 0 || x > n {
		return 0.0
	}
	q := 1 - p
	return CombinationFloat(n, x) * math.Pow(p, float64(x)) * math.Pow(q, float64(n-x))
}

// BinomialPMF computes P(X=x) for the direct-p binomial form used when the
// caller supplies a success probability rather than population counts.
func BinomialPMF(n int, p float64, x int) (float64, error) {
	if err := validation.CheckBinomial(n, p, 0); err != nil {
		return 0, err
	}
	if err := validation.CheckBinomialX([]int{x}, n); err != nil {
		return 0, err
	}
	return binomialPMF(n, p, x), nil
}

// BinomialCDF computes the cumulative P(X<=x) by direct summation of point
// masses. No closed-form shortcut: summation keeps the result exact and
// avoids catastrophic cancellation.
func BinomialCDF(n int, p float64, x int) (float64, error) {
	if err := validation.CheckBinomial(n, p, 0); err != nil {
		return 0, err
	}
	if err := validation.CheckBinomialX([]int{x}, n); err != nil {
		return 0, err
	}
	total := 0.0
	for k := 0; k <= x; k++ {
		total += binomialPMF(n, p, k)
	}
	return total, nil
}

// BinomialGreaterThan computes the complementary P(X>x) = 1 - P(X<=x).
func BinomialGreaterThan(n int, p float64, x int) (float64, error) {
	cdf, err := BinomialCDF(n, p, x)
	if err != nil {
		return 0, err
	}
	return 1 - cdf, nil
}

// BinomialBetween computes the interval P(a<=X<=b) by direct summation.
func BinomialBetween(n int, p float64, a, b int) (float64, error) {
	if err := validation.CheckBinomial(n, p, 0); err != nil {
		return 0, err
	}
	if a > b {
		return 0, core.NewInvalidParameters("interval bounds are reversed: a=%d > b=%d", a, b)
	}
	if err := validation.CheckBinomialX([]int{a, b}, n); err != nil {
		return 0, err
	}
	total := 0.0
	for k := a; k <= b; k++ {
		total += binomialPMF(n, p, k)
	}
	return total, nil
}

// RangeProbabilities builds the mass table for x in [0, min(xMax, support
// limit)]. Inside the batch, values beyond the support come back as 0.0
// rather than failing.
func RangeProbabilities(N, K, n, xMax int, model dist.Model) (dist.MassTable, error) {
	if err := validation.CheckMassParams(N, K, n, 0); err != nil {
		return nil, err
	}
	if !model.Valid() {
		return nil, core.NewInvalidParameters("unknown model %q, use %q or %q", model, dist.ModelBinomial, dist.ModelHypergeometric)
	}
	if xMax < 0 {
		return nil, core.NewInvalidParameters("range bound xMax cannot be negative, got %d", xMax)
	}

	limit := min(xMax, n)
	if model == dist.ModelHypergeometric {
		limit = min(limit, K)
	}

	table := make(dist.MassTable, limit+1)
	for x := 0; x <= limit; x++ {
		table[x] = pointMass(N, K, n, x, model)
	}
	return table, nil
}

// AllProbabilities builds the mass table over the full support. For the
// hypergeometric model the table is zero-padded from min(n, K) up to n so
// downstream index arithmetic stays uniform across models.
func AllProbabilities(N, K, n int, model dist.Model) (dist.MassTable, error) {
	if err := validation.CheckMassParams(N, K, n, 0); err != nil {
		return nil, err
	}
	if !model.Valid() {
		return nil, core.NewInvalidParameters("unknown model %q, use %q or %q", model, dist.ModelBinomial, dist.ModelHypergeometric)
	}

	support := n
	if model == dist.ModelHypergeometric && K < n {
		support = K
	}

	table := make(dist.MassTable, n+1)
	for x := 0; x <= support; x++ {
		table[x] = pointMass(N, K, n, x, model)
	}
	return table, nil
}

func pointMass(N, K, n, x int, model dist.Model) float64 {
	if model == dist.ModelHypergeometric {
		return hypergeometricPMF(N, K, n, x)
	}
	return binomialDerivedPMF(N, K, n, x)
}
