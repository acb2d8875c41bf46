// Package testkit provides seeded simulation helpers for tests: reference
// distributions to cross-check the exact engine against, and samplers whose
// empirical moments should land near the closed-form ones.
package testkit

import (
	"github.com/montanaflynn/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws reproducible samples from reference distributions.
type Sampler struct {
	src *rand.Rand
}

// NewSampler creates a sampler with a fixed seed so tests stay deterministic.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{src: rand.New(rand.NewSource(seed))}
}

// Binomial draws `draws` samples of successes in n trials at probability p.
func (s *Sampler) Binomial(n int, p float64, draws int) []float64 {
	d := distuv.Binomial{N: float64(n), P: p, Src: s.src}
	samples := make([]float64, draws)
	for i := range samples {
		samples[i] = d.Rand()
	}
	return samples
}

// Hypergeometric draws `draws` samples of successes when taking n items
// without replacement from a population of N holding K successes. Sequential
// urn draws keep the simulation exact.
func (s *Sampler) Hypergeometric(N, K, n, draws int) []float64 {
	samples := make([]float64, draws)
	for i := range samples {
		remaining, successes, hits := N, K, 0
		for j := 0; j < n; j++ {
			if s.src.Intn(remaining) < successes {
				hits++
				successes--
			}
			remaining--
		}
		samples[i] = float64(hits)
	}
	return samples
}

// RefBinomialPMF is an independent, approximated reference for P(X=x); the
// engine under test must agree with it to high precision while computing
// exactly.
func RefBinomialPMF(n int, p float64, x int) float64 {
	return distuv.Binomial{N: float64(n), P: p}.Prob(float64(x))
}

// SampleMean returns the empirical mean of a sample.
func SampleMean(samples []float64) float64 {
	m, err := stats.Mean(samples)
	if err != nil {
		return 0
	}
	return m
}

// SampleStdDev returns the empirical standard deviation of a sample.
func SampleStdDev(samples []float64) float64 {
	sd, err := stats.StandardDeviation(samples)
	if err != nil {
		return 0
	}
	return sd
}
