package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleLedger produces round bucket totals so every ratio has a hand
// checkable value: revenue 1000, COGS 400, expense 100, assets 2000,
// liabilities 500, shareholder equity 1000, sales 1000, inventory 200.
func sampleLedger(d time.Time) []Transaction {
	return []Transaction{
		{Date: d, Amount: 1000, Type: TypeCredit, MainCategory: MainRevenue, Subcategory: SubSales},
		{Date: d, Amount: 400, Type: TypeDebit, MainCategory: MainCOGS},
		{Date: d, Amount: 100, Type: TypeDebit, MainCategory: MainExpense},
		{Date: d, Amount: 2000, Type: TypeDebit, MainCategory: MainAssets},
		{Date: d, Amount: 500, Type: TypeCredit, MainCategory: MainLiabilities},
		{Date: d, Amount: 1000, Type: TypeCredit, Subcategory: SubShareholderEquity},
		{Date: d, Amount: 200, Type: TypeDebit, Subcategory: SubInventory},
	}
}

func TestComputeRatios(t *testing.T) {
	got, err := ComputeRatios(sampleLedger(day(2025, time.June, 10)))
	require.NoError(t, err)

	assert.Equal(t, 600.0, got.GrossProfit)
	assert.Equal(t, 500.0, got.NetProfit)
	assert.Equal(t, 4.0, got.CurrentRatio)
	assert.Equal(t, 25.0, got.DebtRatio)
	assert.Equal(t, 50.0, got.DebtToEquityRatio)
	assert.Equal(t, 0.5, got.AssetTurnoverRatio)
	assert.Equal(t, 2.0, got.InventoryTurnoverRatio)
	assert.Equal(t, 60.0, got.GrossMarginRatio)
	assert.Equal(t, 50.0, got.OperatingMarginRatio)
	assert.Equal(t, 25.0, got.ReturnOnAssetsRatio)
	assert.Equal(t, 50.0, got.ReturnOnEquityRatio)
	assert.Equal(t, 50.0, got.NetProfitMarginRatio)
}

func TestComputeRatiosEmptyLedger(t *testing.T) {
	_, err := ComputeRatios(nil)

	assert.ErrorIs(t, err, ErrEmptyLedger)
}

func TestComputeRatiosZeroDenominators(t *testing.T) {
	// A ledger whose classifications match no ratio bucket must yield a
	// fully zero document, never NaN or infinity.
	txs := []Transaction{
		{Amount: 1234, MainCategory: "Miscellaneous", Subcategory: "Petty Cash"},
	}

	got, err := ComputeRatios(txs)
	require.NoError(t, err)

	assert.Equal(t, RatioSet{}, got)
}

func TestComputeRatiosIgnoresUnknownLabels(t *testing.T) {
	base := sampleLedger(day(2025, time.June, 10))
	withNoise := append(append([]Transaction{}, base...), Transaction{
		Amount:       9999,
		MainCategory: "Unmapped",
		Subcategory:  "Unmapped Sub",
	})

	a, err := ComputeRatios(base)
	require.NoError(t, err)
	b, err := ComputeRatios(withNoise)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestComputeRatiosForRange(t *testing.T) {
	today := day(2025, time.June, 10)
	txs := sampleLedger(today)

	t.Run("single day window matches full ledger", func(t *testing.T) {
		ranged, err := ComputeRatiosForRange(txs, today, today)
		require.NoError(t, err)
		full, err := ComputeRatios(txs)
		require.NoError(t, err)

		assert.Equal(t, full, ranged)
	})

	t.Run("disjoint window yields zero ratios", func(t *testing.T) {
		got, err := ComputeRatiosForRange(txs, day(2024, time.January, 1), day(2024, time.January, 31))
		require.NoError(t, err)

		assert.Equal(t, RatioSet{}, got)
	})

	t.Run("empty ledger is an error", func(t *testing.T) {
		_, err := ComputeRatiosForRange(nil, today, today)

		assert.ErrorIs(t, err, ErrEmptyLedger)
	})
}

func TestComputeRatiosTrailing(t *testing.T) {
	asOf := day(2025, time.June, 30)
	inWindow := sampleLedger(day(2025, time.May, 15))
	outOfWindow := sampleLedger(day(2024, time.November, 15))

	t.Run("window keeps recent months only", func(t *testing.T) {
		txs := append(append([]Transaction{}, inWindow...), outOfWindow...)

		got, err := ComputeRatiosTrailing(txs, 6, asOf)
		require.NoError(t, err)

		// Only the in-window copy contributes: ROA 25, ROE 50.
		assert.Equal(t, 25.0, got.ReturnOnAssetsRatio)
		assert.Equal(t, 50.0, got.ReturnOnEquityRatio)
	})

	t.Run("nothing in window", func(t *testing.T) {
		got, err := ComputeRatiosTrailing(outOfWindow, 6, asOf)
		require.NoError(t, err)

		assert.Equal(t, TrailingReturns{}, got)
	})

	t.Run("empty ledger is an error", func(t *testing.T) {
		_, err := ComputeRatiosTrailing(nil, 6, asOf)

		assert.ErrorIs(t, err, ErrEmptyLedger)
	})
}

func TestCompareRatiosMonthly(t *testing.T) {
	asOf := day(2025, time.June, 15)

	current := sampleLedger(day(2025, time.June, 1))
	alsoCurrent := sampleLedger(day(2025, time.June, 30))
	previous := sampleLedger(day(2025, time.May, 31))
	older := sampleLedger(day(2025, time.April, 30))

	var txs []Transaction
	txs = append(txs, current...)
	txs = append(txs, alsoCurrent...)
	txs = append(txs, previous...)
	txs = append(txs, older...)

	got, err := CompareRatiosMonthly(txs, asOf)
	require.NoError(t, err)

	// Two sample ledgers land in June; scale-invariant ratios match the
	// single-ledger values while the profit figures double.
	assert.Equal(t, 1200.0, got.Current.GrossProfit)
	assert.Equal(t, 1000.0, got.Current.NetProfit)
	assert.Equal(t, 4.0, got.Current.CurrentRatio)

	// May holds exactly one sample ledger; April is excluded.
	assert.Equal(t, 600.0, got.Previous.GrossProfit)
	assert.Equal(t, 50.0, got.Previous.ReturnOnEquityRatio)
}

func TestCompareRatiosMonthlyEmptyLedger(t *testing.T) {
	_, err := CompareRatiosMonthly(nil, day(2025, time.June, 15))

	assert.ErrorIs(t, err, ErrEmptyLedger)
}
