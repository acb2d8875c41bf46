package engine

import "math/big"

// Combination returns C(n, k) exactly. Big-integer arithmetic keeps the
// kernel exact for populations in the hundreds and beyond, where fixed-width
// accumulation would silently overflow.
//
// C(n, k) is 0 when k < 0 or k > n. That is a defined edge case, not an
// error: the probability formulas lean on it to represent impossible
// partitions.
func Combination(n, k int) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}
	if k == 0 || k == n {
		return big.NewInt(1)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// CombinationFloat returns C(n, k) converted to float64, rounding only at the
// final conversion.
func CombinationFloat(n, k int) float64 {
	f, _ := new(big.Float).SetInt(Combination(n, k)).Float64()
	return f
}

// combinationRatio evaluates (C(a1,b1) * C(a2,b2)) / C(a3,b3) as an exact
// rational before the single conversion to float64. Returns 0.0 when the
// denominator combination is 0.
func combinationRatio(a1, b1, a2, b2, a3, b3 int) float64 {
	den := Combination(a3, b3)
	if den.Sign() == 0 {
		return 0.0
	}
	num := new(big.Int).Mul(Combination(a1, b1), Combination(a2, b2))
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f
}
