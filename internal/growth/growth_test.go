package growth

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekarsister/gdpgrowth/internal/table"
)

func filled(v float64) table.RawTable {
	var raw table.RawTable
	for i := range raw {
		for j := range raw[i] {
			for k := range raw[i][j] {
				raw[i][j][k] = v
			}
		}
	}
	return raw
}

// project compounds baseline forward at rate for years.
func project(baseline, rate float64, years int) float64 {
	return baseline * math.Pow(1+rate, float64(years))
}

func TestComputeBaselineIdentity(t *testing.T) {
	raw := filled(1000)
	raw[table.HighIncome][2] = [5]float64{1000, 1200, 1500, 1800, 2200}
	raw[table.LowIncome][0][0] = 350

	rates, err := Compute(raw, DefaultYears)
	require.NoError(t, err)

	for i := range rates {
		assert.Equal(t, 0.0, rates[i][table.NoGrowth][table.NoWarming], "group %d", i)
	}
	assert.InDelta(t, math.Pow(2.2, 1.0/80)-1, rates[table.HighIncome][2][4], 1e-12)
	assert.InDelta(t, 0.009904, rates[table.HighIncome][2][4], 1e-6)
	assert.InDelta(t, math.Pow(1.5, 1.0/80)-1, rates[table.HighIncome][2][2], 1e-12)
}

func TestComputeInversion(t *testing.T) {
	baselines := []float64{0.5, 1, 950, 41200, 1e6}
	ratios := []float64{0.2, 0.9, 1, 1.7, 12.5}
	horizons := []int{1, 10, 80, 200}

	for _, b := range baselines {
		for _, r := range ratios {
			for _, n := range horizons {
				raw := filled(b)
				raw[table.MiddleIncome][3][2] = r * b

				rates, err := Compute(raw, n)
				require.NoError(t, err)

				got := project(b, rates[table.MiddleIncome][3][2], n)
				assert.InEpsilon(t, r*b, got, 1e-9, "b=%v r=%v n=%d", b, r, n)
			}
		}
	}
}

func TestComputeDoesNotDependOnOtherGroups(t *testing.T) {
	raw := filled(100)
	raw[table.AllCountries][1][1] = 300

	want, err := Compute(raw, DefaultYears)
	require.NoError(t, err)

	scaled := raw
	for j := range scaled[table.LowIncome] {
		for k := range scaled[table.LowIncome][j] {
			scaled[table.LowIncome][j][k] *= 7
		}
	}
	got, err := Compute(scaled, DefaultYears)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("rates changed after rescaling one group (-want +got):\n%s", diff)
	}
}

func TestComputeErrors(t *testing.T) {
	t.Run("zero horizon", func(t *testing.T) {
		_, err := Compute(filled(1), 0)
		assert.ErrorIs(t, err, ErrInvalidHorizon)
	})

	t.Run("zero baseline", func(t *testing.T) {
		raw := filled(1)
		raw[table.MiddleIncome][0][0] = 0

		_, err := Compute(raw, DefaultYears)
		var be *BaselineError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, "Middle-income group", be.Group)
	})

	t.Run("negative ratio", func(t *testing.T) {
		raw := filled(1)
		raw[table.AllCountries][4][3] = -2

		_, err := Compute(raw, DefaultYears)
		var de *DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "SSP4", de.Growth)
		assert.Equal(t, "7.0 W m-2", de.Warming)
		assert.Equal(t, -2.0, de.Ratio)
	})
}

func TestPercentLeavesInputUntouched(t *testing.T) {
	var rates table.GrowthTable
	rates[1][2][3] = 0.0125

	pct := Percent(rates)

	assert.InDelta(t, 1.25, pct[1][2][3], 1e-12)
	assert.Equal(t, 0.0125, rates[1][2][3])
}

func TestSummarize(t *testing.T) {
	var rates table.GrowthTable
	for j := 1; j < table.NumGrowth; j++ {
		for k := 1; k < table.NumWarming; k++ {
			rates[table.LowIncome][j][k] = float64(j)/100 - float64(k)/1000
		}
	}
	// Excluded cells must not affect the summary.
	rates[table.LowIncome][0][3] = 9

	summaries, err := Summarize(rates)
	require.NoError(t, err)
	require.Len(t, summaries, table.NumGroups)

	low := summaries[table.LowIncome]
	assert.Equal(t, "Low-income group", low.Group)
	assert.InDelta(t, 0.6, low.Min, 1e-9)
	assert.InDelta(t, 4.9, low.Max, 1e-9)
	assert.InDelta(t, 2.75, low.Mean, 1e-9)
	assert.InDelta(t, 0.3, low.Spread, 1e-9)

	assert.Equal(t, 0.0, summaries[table.HighIncome].Max)
}
