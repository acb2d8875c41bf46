package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godiscrete/domain/core"
)

func sampleValues() []string {
	return []string{"red", "blue", "red", "green", "red", "blue", ""}
}

func TestCountTalliesValuesIncludingBlanks(t *testing.T) {
	table := Count(sampleValues())

	assert.Equal(t, 7, table.Total)
	assert.Equal(t, 3, table.Counts["red"])
	assert.Equal(t, 2, table.Counts["blue"])
	assert.Equal(t, 1, table.Counts["green"])
	assert.Equal(t, 1, table.Counts[MissingKey])
	assert.Len(t, table.Counts, 4)
}

func TestCategoriesOrderByCountThenName(t *testing.T) {
	table := Count(sampleValues())

	assert.Equal(t, []string{"red", "blue", MissingKey, "green"}, table.Categories())
}

func TestParamsDeriveCountsForTheChosenCategory(t *testing.T) {
	table := Count(sampleValues())

	params, err := table.Params("red")
	require.NoError(t, err)
	assert.Equal(t, 7, params.PopulationSize)
	assert.Equal(t, 3, params.PopulationSuccesses)

	_, err = table.Params("purple")
	assert.True(t, core.IsInvalidParameters(err))
}

func TestDescribeSummarizesCategoryCounts(t *testing.T) {
	table := Count(sampleValues())

	desc, err := table.Describe()
	require.NoError(t, err)

	assert.Equal(t, 4, desc.Categories)
	assert.InDelta(t, 1.75, desc.Mean, 1e-9)
	assert.InDelta(t, 1.5, desc.Median, 1e-9)
	assert.InDelta(t, 0.82915619758885, desc.StdDev, 1e-9)
	assert.InDelta(t, 1.0, desc.Min, 1e-9)
	assert.InDelta(t, 3.0, desc.Max, 1e-9)
}

func TestDescribeRejectsEmptyTable(t *testing.T) {
	_, err := Count(nil).Describe()
	assert.True(t, core.IsInvalidParameters(err))
}
