package tax

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeZeroTaxStates(t *testing.T) {
	states := []string{"Alaska", "Florida", "Nevada", "New Hampshire", "South Dakota", "Tennessee", "Texas"}
	incomes := []float64{0, 1, 3000, 100000, 2500000}

	for _, state := range states {
		t.Run(state, func(t *testing.T) {
			for _, income := range incomes {
				got, err := Compute(state, income)
				require.NoError(t, err)
				assert.Equal(t, "0.00", got.StringFixed(2))
			}
		})
	}
}

func TestComputeFlatRateStates(t *testing.T) {
	t.Run("colorado 4.5 percent", func(t *testing.T) {
		got, err := Compute("Colorado", 100000)
		require.NoError(t, err)
		assert.Equal(t, "4500.00", got.StringFixed(2))
	})

	t.Run("illinois 4.95 percent", func(t *testing.T) {
		got, err := Compute("Illinois", 50000)
		require.NoError(t, err)
		assert.Equal(t, "2475.00", got.StringFixed(2))
	})

	t.Run("indiana 3.23 percent", func(t *testing.T) {
		got, err := Compute("Indiana", 10000)
		require.NoError(t, err)
		assert.Equal(t, "323.00", got.StringFixed(2))
	})
}

func TestComputeWholeIncomeTierStates(t *testing.T) {
	t.Run("alabama 3000 falls in 3 percent tier", func(t *testing.T) {
		got, err := Compute("Alabama", 3000)
		require.NoError(t, err)
		assert.Equal(t, "90.00", got.StringFixed(2))
	})

	t.Run("alabama tier edge is inclusive", func(t *testing.T) {
		got, err := Compute("Alabama", 2500)
		require.NoError(t, err)
		assert.Equal(t, "50.00", got.StringFixed(2))
	})

	t.Run("alabama just above tier edge taxes whole income at next rate", func(t *testing.T) {
		got, err := Compute("Alabama", 2600)
		require.NoError(t, err)
		assert.Equal(t, "78.00", got.StringFixed(2))
	})

	t.Run("arkansas top tier", func(t *testing.T) {
		got, err := Compute("Arkansas", 200000)
		require.NoError(t, err)
		// 6900 at the 100k lower bound plus 6.9% of the excess
		assert.Equal(t, "13800.00", got.StringFixed(2))
	})
}

func TestComputeMarginalStates(t *testing.T) {
	cases := []struct {
		state  string
		income float64
		want   string
	}{
		{"California", 10412, "104.12"},
		{"California", 100000, "5952.85"},
		{"Connecticut", 60000, "2850.00"},
		{"Georgia", 10000, "402.50"},
		{"New York", 100000, "5432.00"},
		{"Kansas", 20000, "726.00"},
		{"Virginia", 17000, "720.00"},
		{"Oregon", 25000, "2042.50"},
		{"Montana", 10000, "220.00"},
		{"New Mexico", 95000, "4133.00"},
		{"Oklahoma", 15000, "466.50"},
		{"Wisconsin", 30000, "1554.00"},
		{"Hawaii", 14400, "638.00"},
		{"Hawaii", 175000, "13691.50"},
		{"Hawaii", 400000, "35941.50"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s %.0f", tc.state, tc.income), func(t *testing.T) {
			got, err := Compute(tc.state, tc.income)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}

func TestComputeArizonaSurcharge(t *testing.T) {
	t.Run("below threshold no surcharge", func(t *testing.T) {
		got, err := Compute("Arizona", 250000)
		require.NoError(t, err)
		assert.Equal(t, "17537.00", got.StringFixed(2))
	})

	t.Run("above threshold stacks 3.5 percent of whole income", func(t *testing.T) {
		got, err := Compute("Arizona", 300000)
		require.NoError(t, err)
		// 12529 + 50000*0.01 + 300000*0.035
		assert.Equal(t, "23529.00", got.StringFixed(2))
	})
}

func TestComputeJurisdictionMatching(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		a, err := Compute("COLORADO", 100000)
		require.NoError(t, err)
		b, err := Compute("colorado", 100000)
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})

	t.Run("surrounding whitespace ignored", func(t *testing.T) {
		got, err := Compute("  Texas  ", 50000)
		require.NoError(t, err)
		assert.Equal(t, "0.00", got.StringFixed(2))
	})

	t.Run("unknown jurisdiction", func(t *testing.T) {
		_, err := Compute("Ontario", 50000)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownJurisdiction)
	})

	t.Run("empty jurisdiction", func(t *testing.T) {
		_, err := Compute("", 50000)
		assert.ErrorIs(t, err, ErrUnknownJurisdiction)
	})
}

func TestComputeNonFiniteIncome(t *testing.T) {
	for _, income := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Compute("Colorado", income)
		assert.ErrorIs(t, err, ErrInvalidIncome)
	}
}

func TestComputeNegativeIncomeIsPermitted(t *testing.T) {
	got, err := Compute("Colorado", -1000)
	require.NoError(t, err)
	assert.Equal(t, "-45.00", got.StringFixed(2))
}

func TestComputeZeroIncomeNonNegativeEverywhere(t *testing.T) {
	for _, j := range Jurisdictions() {
		got, err := Compute(j, 0)
		require.NoError(t, err)
		assert.False(t, got.IsNegative(), "jurisdiction %s taxes zero income negatively", j)
	}
}

// Sampling on a coarse grid keeps the check clear of the sub-dollar dips a
// few published tier tables carry right at their edges.
func TestComputeMonotonicOnGrid(t *testing.T) {
	for _, j := range Jurisdictions() {
		t.Run(j, func(t *testing.T) {
			prev, err := Compute(j, 0)
			require.NoError(t, err)
			for income := float64(1000); income <= 1200000; income += 1000 {
				cur, err := Compute(j, income)
				require.NoError(t, err)
				assert.True(t, cur.GreaterThanOrEqual(prev),
					"tax decreased from %s to %s between %.0f and %.0f", prev, cur, income-1000, income)
				prev = cur
			}
		})
	}
}

func TestComputeBracketContinuity(t *testing.T) {
	// Crossing a marginal bracket edge by epsilon moves the tax by roughly
	// the new marginal rate times epsilon.
	t.Run("california 4 percent bracket", func(t *testing.T) {
		at, err := Compute("California", 24684)
		require.NoError(t, err)
		above, err := Compute("California", 24694)
		require.NoError(t, err)
		assert.Equal(t, "0.40", above.Sub(at).StringFixed(2))
	})

	t.Run("virginia top bracket", func(t *testing.T) {
		at, err := Compute("Virginia", 17000)
		require.NoError(t, err)
		above, err := Compute("Virginia", 17100)
		require.NoError(t, err)
		assert.Equal(t, "5.75", above.Sub(at).StringFixed(2))
	})

	// The edges where the published bases fall short of the cumulative
	// amounts must not drop the tax.
	t.Run("hawaii corrected edges", func(t *testing.T) {
		for _, edge := range []float64{14400, 175000, 200000, 400000} {
			at, err := Compute("Hawaii", edge)
			require.NoError(t, err)
			above, err := Compute("Hawaii", edge+100)
			require.NoError(t, err)
			assert.True(t, above.GreaterThanOrEqual(at),
				"tax decreased from %s to %s crossing %.0f", at, above, edge)
		}
	})
}

func TestJurisdictions(t *testing.T) {
	all := Jurisdictions()

	assert.Len(t, all, 50)
	assert.Contains(t, all, "texas")
	assert.Contains(t, all, "new hampshire")
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
}
