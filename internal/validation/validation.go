// Package validation guards the engine's public entry points. Every check
// here runs before any arithmetic does: bad input becomes a typed
// invalid-parameters failure, never a partial result.
package validation

import (
	"strconv"
	"strings"

	"godiscrete/domain/core"
)

// CheckBinomial validates the direct-p binomial parameters. N is optional;
// any N <= 0 means the population size is unspecified, the same encoding the
// infinite-population rule uses.
func CheckBinomial(n int, p float64, N int) error {
	if n <= 0 {
		return core.NewInvalidParameters("trial count n must be greater than 0, got %d", n)
	}
	if p < 0 || p > 1 {
		return core.NewInvalidParameters("success probability p must be within [0,1], got %g", p)
	}
	if N > 0 && n >= N {
		return core.NewInvalidParameters("sample size n=%d must be smaller than population size N=%d", n, N)
	}
	return nil
}

// CheckHypergeometric validates the hypergeometric population parameters.
func CheckHypergeometric(N, K, n int) error {
	if N <= 0 {
		return core.NewInvalidParameters("population size N must be greater than 0, got %d", N)
	}
	if K < 0 {
		return core.NewInvalidParameters("population successes K cannot be negative, got %d", K)
	}
	if K > N {
		return core.NewInvalidParameters("population successes K=%d cannot exceed population size N=%d", K, N)
	}
	if n <= 0 {
		return core.NewInvalidParameters("sample size n must be greater than 0, got %d", n)
	}
	if n > N {
		return core.NewInvalidParameters("sample size n=%d cannot exceed population size N=%d", n, N)
	}
	return nil
}

// CheckMassParams validates the full (N, K, n, x) tuple used by the
// single-point probability calculators.
func CheckMassParams(N, K, n, x int) error {
	if err := CheckHypergeometric(N, K, n); err != nil {
		return err
	}
	if x < 0 {
		return core.NewInvalidParameters("success count x cannot be negative, got %d", x)
	}
	if x > K {
		return core.NewInvalidParameters("success count x=%d cannot exceed population successes K=%d", x, K)
	}
	if x > n {
		return core.NewInvalidParameters("success count x=%d cannot exceed sample size n=%d", x, n)
	}
	return nil
}

// CheckBinomialX validates x values for the binomial support [0, n].
func CheckBinomialX(xs []int, n int) error {
	for _, x := range xs {
		if x < 0 || x > n {
			return core.NewInvalidParameters("value x=%d must be within [0, %d]", x, n)
		}
	}
	return nil
}

// CheckHypergeometricX validates x values for the hypergeometric support
// [0, min(n, K)].
func CheckHypergeometricX(xs []int, n, K int) error {
	max := n
	if K < max {
		max = K
	}
	for _, x := range xs {
		if x < 0 {
			return core.NewInvalidParameters("value x=%d cannot be negative", x)
		}
		if x > max {
			return core.NewInvalidParameters("value x=%d exceeds the largest possible count %d (min of n=%d and K=%d)", x, max, n, K)
		}
	}
	return nil
}

// ParseXSpec parses the caller-facing free-text specification of x values.
// "all" or an empty string selects the full support [0, limit]; a single bare
// integer v selects the range [0, min(v, limit)] (clamped to [0] when v is
// negative); a comma-separated list selects exactly those values. The parsed
// list must still pass the per-model x checks before use.
func ParseXSpec(text string, limit int) ([]int, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	if text == "" || text == "all" {
		return fullRange(limit), nil
	}

	if !strings.Contains(text, ",") {
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, core.NewInvalidParameters("value specification %q is not an integer, a comma-separated list, or \"all\"", text)
		}
		if v < 0 {
			return []int{0}, nil
		}
		if v > limit {
			v = limit
		}
		return fullRange(v), nil
	}

	parts := strings.Split(text, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, core.NewInvalidParameters("value %q in the list is not an integer", strings.TrimSpace(part))
		}
		values = append(values, v)
	}
	return values, nil
}

func fullRange(limit int) []int {
	if limit < 0 {
		return nil
	}
	values := make([]int, limit+1)
	for i := range values {
		values[i] = i
	}
	return values
}
