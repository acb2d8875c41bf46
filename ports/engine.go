package ports

import (
	"godiscrete/domain/dist"
)

// DistributionEngine is the probability engine consumed by the application
// layer. Implementations are stateless: every call is a pure computation over
// its arguments and is safe for concurrent use without coordination.
type DistributionEngine interface {
	// SelectModel applies the 20% sampling-fraction rule.
	SelectModel(n, N int) (dist.ModelChoice, error)

	// PopulationMode applies the independent 5% infinite-population rule
	// used by the binomial moment formulas.
	PopulationMode(n, N int) dist.PopulationMode

	// PointProbability computes P(X=x) from population counts under the
	// given model.
	PointProbability(N, K, n, x int, model dist.Model) (float64, error)

	// RangeProbabilities computes the mass table for x in
	// [0, min(xMax, support limit)].
	RangeProbabilities(N, K, n, xMax int, model dist.Model) (dist.MassTable, error)

	// AllProbabilities computes the mass table over the full support,
	// zero-padded up to n for the hypergeometric model.
	AllProbabilities(N, K, n int, model dist.Model) (dist.MassTable, error)

	// Moments derives the descriptive statistics for the given parameters
	// and mass table.
	Moments(N, K, n int, model dist.Model, table dist.MassTable) (dist.Summary, error)
}
