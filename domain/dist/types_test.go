package dist

import "testing"

func TestModelValid(t *testing.T) {
	if !ModelBinomial.Valid() || !ModelHypergeometric.Valid() {
		t.Fatal("known models must be valid")
	}
	if Model("poisson").Valid() {
		t.Fatal("unknown model must not be valid")
	}
	if Model("").Valid() {
		t.Fatal("empty model must not be valid")
	}
}

func TestMassTableLookups(t *testing.T) {
	table := MassTable{0.5, 0.3, 0.2}

	if got := table.Prob(1); got != 0.3 {
		t.Errorf("Prob(1) = %v, want 0.3", got)
	}
	if got := table.Prob(-1); got != 0.0 {
		t.Errorf("Prob(-1) = %v, want 0.0", got)
	}
	if got := table.Prob(3); got != 0.0 {
		t.Errorf("Prob(3) = %v, want 0.0", got)
	}
	if got := table.Sum(); got != 1.0 {
		t.Errorf("Sum() = %v, want 1.0", got)
	}
	if got := table.Limit(); got != 2 {
		t.Errorf("Limit() = %d, want 2", got)
	}
	if got := (MassTable{}).Limit(); got != -1 {
		t.Errorf("empty Limit() = %d, want -1", got)
	}
}

func TestClassifySkewnessThreshold(t *testing.T) {
	cases := []struct {
		value float64
		want  SkewLabel
	}{
		{0.5, SkewPositive},
		{0.011, SkewPositive},
		{0.01, SkewNeutral}, // threshold itself is neutral
		{0.0, SkewNeutral},
		{-0.01, SkewNeutral},
		{-0.011, SkewNegative},
		{-0.5, SkewNegative},
	}
	for _, c := range cases {
		if got := ClassifySkewness(c.value); got != c.want {
			t.Errorf("ClassifySkewness(%v) = %s, want %s", c.value, got, c.want)
		}
	}
}

func TestClassifyKurtosisThreshold(t *testing.T) {
	cases := []struct {
		value float64
		want  KurtosisLabel
	}{
		{2.0, KurtosisLeptokurtic},
		{0.11, KurtosisLeptokurtic},
		{0.1, KurtosisMesokurtic},
		{0.0, KurtosisMesokurtic},
		{-0.1, KurtosisMesokurtic},
		{-0.11, KurtosisPlatykurtic},
		{-2.0, KurtosisPlatykurtic},
	}
	for _, c := range cases {
		if got := ClassifyKurtosis(c.value); got != c.want {
			t.Errorf("ClassifyKurtosis(%v) = %s, want %s", c.value, got, c.want)
		}
	}
}

func TestSkewFromMeanMedian(t *testing.T) {
	cases := []struct {
		mean, median float64
		want         SkewLabel
	}{
		{1.5, 1.0, SkewPositive},
		{0.96, 1.0, SkewNegative},
		{1.0, 1.0, SkewNull},
		{1.0005, 1.0, SkewNull}, // inside tolerance
		{1.0, 1.0005, SkewNull},
	}
	for _, c := range cases {
		if got := SkewFromMeanMedian(c.mean, c.median); got != c.want {
			t.Errorf("SkewFromMeanMedian(%v, %v) = %s, want %s", c.mean, c.median, got, c.want)
		}
	}
}

func TestLabelDescriptions(t *testing.T) {
	if SkewPositive.Describe() == "" || SkewNull.Describe() == "" {
		t.Fatal("skew labels must describe themselves")
	}
	if KurtosisLeptokurtic.Describe() == "" || KurtosisMesokurtic.Describe() == "" {
		t.Fatal("kurtosis labels must describe themselves")
	}
}
