// Package frequency supports the data-import collaborator: it derives
// distribution parameters from per-category value counts over one column of
// an already-parsed dataset. Reading and parsing files is the caller's
// business; this package only sees plain values.
package frequency

import (
	"sort"

	"github.com/montanaflynn/stats"

	"godiscrete/domain/core"
	"godiscrete/domain/dist"
)

// MissingKey is the category under which blank values are counted.
const MissingKey = "(missing)"

// Table holds the per-category observation counts of one column.
type Table struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// Count tallies the values of a column into a frequency table. Blank values
// are kept under MissingKey so the total always matches the row count.
func Count(values []string) Table {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		if v == "" {
			v = MissingKey
		}
		counts[v]++
	}
	return Table{Counts: counts, Total: len(values)}
}

// Categories returns the category names ordered by descending count, ties
// broken by name.
func (t Table) Categories() []string {
	names := make([]string, 0, len(t.Counts))
	for name := range t.Counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if t.Counts[names[i]] != t.Counts[names[j]] {
			return t.Counts[names[i]] > t.Counts[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// Params derives the distribution parameters for the chosen category: N is
// the total observation count, K the category's count. The engine treats both
// as ordinary integers, unaware of their provenance.
func (t Table) Params(category string) (dist.Params, error) {
	count, ok := t.Counts[category]
	if !ok {
		return dist.Params{}, core.NewInvalidParameters(
			"category %q does not exist in the frequency table (%d categories counted)", category, len(t.Counts))
	}
	return dist.Params{
		PopulationSize:      t.Total,
		PopulationSuccesses: count,
	}, nil
}

// Descriptives summarizes how observations spread across categories.
type Descriptives struct {
	Categories int     `json:"categories"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
}

// Describe computes summary statistics over the per-category counts.
func (t Table) Describe() (Descriptives, error) {
	if len(t.Counts) == 0 {
		return Descriptives{}, core.NewInvalidParameters("frequency table is empty")
	}

	counts := make([]float64, 0, len(t.Counts))
	for _, c := range t.Counts {
		counts = append(counts, float64(c))
	}

	mean, err := stats.Mean(counts)
	if err != nil {
		return Descriptives{}, core.NewCalculationError("summarizing category counts", err)
	}
	median, err := stats.Median(counts)
	if err != nil {
		return Descriptives{}, core.NewCalculationError("summarizing category counts", err)
	}
	stdDev, err := stats.StandardDeviation(counts)
	if err != nil {
		return Descriptives{}, core.NewCalculationError("summarizing category counts", err)
	}
	min, err := stats.Min(counts)
	if err != nil {
		return Descriptives{}, core.NewCalculationError("summarizing category counts", err)
	}
	max, err := stats.Max(counts)
	if err != nil {
		return Descriptives{}, core.NewCalculationError("summarizing category counts", err)
	}

	return Descriptives{
		Categories: len(t.Counts),
		Mean:       mean,
		Median:     median,
		StdDev:     stdDev,
		Min:        min,
		Max:        max,
	}, nil
}
