package engine

import (
	"math"

	"godiscrete/domain/core"
	"godiscrete/domain/dist"
)

// The moment calculators are pure functions of the distribution parameters.
// Degenerate configurations (zero variance, exhausted populations) are
// reachable from valid but extreme inputs, so they yield defined values with
// a neutral label instead of errors. Basic and finite-corrected forms share
// one implementation gated on the explicit population mode.

// DerivedMean computes the mean n*K/N shared by both population-derived
// models.
func DerivedMean(n, K, N int) (float64, error) {
	if N <= 0 {
		return 0, core.NewInvalidParameters("population size N must be greater than 0, got %d", N)
	}
	if n <= 0 {
		return 0, core.NewInvalidParameters("sample size n must be greater than 0, got %d", n)
	}
	return float64(n) * float64(K) / float64(N), nil
}

// BinomialMean computes n*p for the direct-p form.
func BinomialMean(n int, p float64) float64 {
	return float64(n) * p
}

// FPC returns the finite population correction factor sqrt((N-n)/(N-1)).
// It scales the standard deviation; its square scales the variance.
func FPC(n, N int) float64 {
	return math.Sqrt(float64(N-n) / float64(N-1))
}

// BinomialVariance computes n*p*q, multiplied by (N-n)/(N-1) when the
// population mode is finite.
func BinomialVariance(n int, p float64, mode dist.PopulationMode, N int) float64 {
	variance := float64(n) * p * (1 - p)
	if mode == dist.PopulationFinite {
		variance *= float64(N-n) / float64(N-1)
	}
	return variance
}

// BinomialStdDev is the square root of BinomialVariance.
func BinomialStdDev(n int, p float64, mode dist.PopulationMode, N int) float64 {
	return math.Sqrt(BinomialVariance(n, p, mode, N))
}

// HypergeometricVariance computes n*(K/N)*((N-K)/N)*((N-n)/(N-1)). The
// correction factor is inherent to sampling without replacement, so it always
// applies. Returns 0 when N <= 1.
func HypergeometricVariance(n, K, N int) float64 {
	if N <= 1 {
		return 0.0
	}
	p := float64(K) / float64(N)
	q := float64(N-K) / float64(N)
	fpc := float64(N-n) / float64(N-1)
	return float64(n) * p * q * fpc
}

// HypergeometricStdDev is the square root of HypergeometricVariance.
func HypergeometricStdDev(n, K, N int) float64 {
	return math.Sqrt(HypergeometricVariance(n, K, N))
}

// Median returns the smallest x (ascending) at which the cumulative mass
// reaches 0.5. If rounding keeps the total just under 0.5, the last table
// entry wins. An empty table is an invalid-parameters failure.
func Median(table dist.MassTable) (int, error) {
	if len(table) == 0 {
		return 0, core.NewInvalidParameters("probability mass table cannot be empty")
	}

	cumulative := 0.0
	for x, mass := range table {
		cumulative += mass
		if cumulative >= 0.5 {
			return x, nil
		}
	}
	return table.Limit(), nil
}

// BinomialSkewness computes (1-2p)/sqrt(n*p*q), divided by sqrt(FPC) when the
// population mode is finite. Zero variance yields (0, neutral).
func BinomialSkewness(n int, p float64, mode dist.PopulationMode, N int) (float64, dist.SkewLabel) {
	variance := float64(n) * p * (1 - p)
	if variance == 0 {
		return 0, dist.SkewNeutral
	}

	skew := (1 - 2*p) / math.Sqrt(variance)
	if mode == dist.PopulationFinite {
		skew /= FPC(n, N)
	}
	return skew, dist.ClassifySkewness(skew)
}

// HypergeometricSkewness computes the closed form
// (N-2K)*sqrt(N-1)*(N-2n) / (sqrt(n*K*(N-K)*(N-n))*(N-2)).
// Any degenerate guard term yields (0, neutral).
func HypergeometricSkewness(N, K, n int) (float64, dist.SkewLabel) {
	if N <= 2 || K <= 0 || N-K <= 0 || n <= 0 || N-n <= 0 {
		return 0, dist.SkewNeutral
	}

	denominator := math.Sqrt(float64(n)*float64(K)*float64(N-K)*float64(N-n)) * float64(N-2)
	if denominator == 0 {
		return 0, dist.SkewNeutral
	}

	skew := float64(N-2*K) * math.Sqrt(float64(N-1)) * float64(N-2*n) / denominator
	return skew, dist.ClassifySkewness(skew)
}

// BinomialKurtosis computes the excess kurtosis (1-6pq)/(n*p*q), divided by
// FPC squared when the population mode is finite. Zero variance yields
// (0, mesokurtic).
func BinomialKurtosis(n int, p float64, mode dist.PopulationMode, N int) (float64, dist.KurtosisLabel) {
	q := 1 - p
	variance := float64(n) * p * q
	if variance == 0 {
		return 0, dist.KurtosisMesokurtic
	}

	kurtosis := (1 - 6*p*q) / variance
	if mode == dist.PopulationFinite {
		kurtosis /= float64(N-n) / float64(N-1)
	}
	return kurtosis, dist.ClassifyKurtosis(kurtosis)
}

// HypergeometricKurtosis computes the closed-form fourth-moment excess
// kurtosis. Every degenerate configuration (N <= 3, exhausted population or
// successes, zero variance or denominator) yields (0, mesokurtic) - never an
// error, since all are reachable from valid parameters.
func HypergeometricKurtosis(N, K, n int) (float64, dist.KurtosisLabel) {
	if N <= 3 || K <= 0 || N-K <= 0 || n <= 0 || N-n <= 0 {
		return 0, dist.KurtosisMesokurtic
	}

	p := float64(K) / float64(N)
	q := 1 - p
	variance := float64(n) * p * q * float64(N-n) / float64(N-1)
	if variance == 0 {
		return 0, dist.KurtosisMesokurtic
	}

	nf, Nf := float64(n), float64(N)
	numerator := (Nf - 1) * (Nf*(Nf+1) - 6*Nf*(Nf-nf)*p*q +
		6*nf*(Nf-nf)*(Nf-2)*(Nf-3)*p*p*q*q)
	denominator := nf * (Nf - nf) * (Nf - 2) * (Nf - 3) * p * q * variance
	if denominator == 0 {
		return 0, dist.KurtosisMesokurtic
	}

	kurtosis := numerator/denominator - 3
	return kurtosis, dist.ClassifyKurtosis(kurtosis)
}
