package dist

import "math"

// Model identifies the sampling distribution used for a calculation.
type Model string

const (
	ModelBinomial       Model = "binomial"
	ModelHypergeometric Model = "hypergeometric"
)

// Valid reports whether m is a known model.
func (m Model) Valid() bool {
	return m == ModelBinomial || m == ModelHypergeometric
}

func (m Model) String() string { return string(m) }

// PopulationMode states whether finite-population correction applies to the
// Binomial moment formulas. It is resolved by the 5% rule, which is a
// different rule from the 20% model-selection threshold: one decides variance
// correction, the other decides which distribution to use.
type PopulationMode string

const (
	PopulationInfinite PopulationMode = "infinite"
	PopulationFinite   PopulationMode = "finite"
)

// Params carries the inputs of one calculation request. All entities here are
// value types created, used, and discarded within a single computation call.
type Params struct {
	PopulationSize      int     `json:"population_size"`      // N; 0 means unspecified (infinite population)
	PopulationSuccesses int     `json:"population_successes"` // K, hypergeometric and population-derived binomial
	SampleSize          int     `json:"sample_size"`          // n
	SuccessProb         float64 `json:"success_prob"`         // p, direct-p binomial only
}

// ModelChoice is the model selector's output: the chosen model plus the
// sample/population ratio that triggered it.
type ModelChoice struct {
	Model Model   `json:"model"`
	Ratio float64 `json:"ratio"`
}

// MassTable maps x (the slice index, 0..limit) to the point probability
// P(X=x). Entries beyond a model's support are 0.0.
type MassTable []float64

// Prob returns P(X=x), or 0.0 when x falls outside the table.
func (t MassTable) Prob(x int) float64 {
	if x < 0 || x >= len(t) {
		return 0.0
	}
	return t[x]
}

// Sum returns the total mass of the table.
func (t MassTable) Sum() float64 {
	total := 0.0
	for _, p := range t {
		total += p
	}
	return total
}

// Limit returns the largest x the table covers, or -1 for an empty table.
func (t MassTable) Limit() int {
	return len(t) - 1
}

// SkewLabel is the qualitative reading of a skewness figure. Two independent
// labels exist side by side: the formula-sign label (Positive/Negative/
// Neutral) and the mean-vs-median label (Positive/Negative/Null). The two can
// disagree near zero; that is expected, not a bug, and both are surfaced.
type SkewLabel string

const (
	SkewPositive SkewLabel = "positive"
	SkewNegative SkewLabel = "negative"
	SkewNeutral  SkewLabel = "neutral"
	SkewNull     SkewLabel = "null"
)

// Describe returns the human-readable interpretation shown to callers.
func (l SkewLabel) Describe() string {
	switch l {
	case SkewPositive:
		return "Positive (right-tailed asymmetry)"
	case SkewNegative:
		return "Negative (left-tailed asymmetry)"
	case SkewNull:
		return "Null (mean equals median)"
	default:
		return "Neutral (symmetric)"
	}
}

// KurtosisLabel is the qualitative reading of an excess-kurtosis figure.
type KurtosisLabel string

const (
	KurtosisLeptokurtic KurtosisLabel = "leptokurtic"
	KurtosisMesokurtic  KurtosisLabel = "mesokurtic"
	KurtosisPlatykurtic KurtosisLabel = "platykurtic"
)

func (l KurtosisLabel) Describe() string {
	switch l {
	case KurtosisLeptokurtic:
		return "Leptokurtic (peaked curve)"
	case KurtosisPlatykurtic:
		return "Platykurtic (flattened curve)"
	default:
		return "Mesokurtic (near-normal curve)"
	}
}

// Interpretation thresholds
const (
	SkewThreshold       = 0.01  // |skew| above this gets a signed label
	KurtosisThreshold   = 0.1   // |excess kurtosis| above this gets a shaped label
	MeanMedianTolerance = 0.001 // mean/median difference below this counts as equal
)

// ClassifySkewness converts a skewness value to its formula-sign label.
func ClassifySkewness(value float64) SkewLabel {
	switch {
	case value > SkewThreshold:
		return SkewPositive
	case value < -SkewThreshold:
		return SkewNegative
	default:
		return SkewNeutral
	}
}

// ClassifyKurtosis converts an excess-kurtosis value to its label.
func ClassifyKurtosis(value float64) KurtosisLabel {
	switch {
	case value > KurtosisThreshold:
		return KurtosisLeptokurtic
	case value < -KurtosisThreshold:
		return KurtosisPlatykurtic
	default:
		return KurtosisMesokurtic
	}
}

// SkewFromMeanMedian derives the second, independent skew label by comparing
// mean against median.
func SkewFromMeanMedian(mean, median float64) SkewLabel {
	diff := mean - median
	switch {
	case math.Abs(diff) < MeanMedianTolerance:
		return SkewNull
	case diff < 0:
		return SkewNegative
	default:
		return SkewPositive
	}
}

// SkewMeasure pairs a skewness value with its formula-sign label.
type SkewMeasure struct {
	Value float64   `json:"value"`
	Label SkewLabel `json:"label"`
}

// KurtosisMeasure pairs an excess-kurtosis value with its label.
type KurtosisMeasure struct {
	Value float64       `json:"value"`
	Label KurtosisLabel `json:"label"`
}

// Summary is the derived aggregate of descriptive statistics for one
// distribution. It is computed fresh from a mass table and the originating
// parameters, never mutated.
type Summary struct {
	Model          Model           `json:"model"`
	Mean           float64         `json:"mean"`
	StdDev         float64         `json:"std_dev"`
	Variance       float64         `json:"variance"`
	Median         float64         `json:"median"`
	Skewness       SkewMeasure     `json:"skewness"`
	MeanMedianSkew SkewLabel       `json:"mean_median_skew"`
	Kurtosis       KurtosisMeasure `json:"kurtosis"`
}
