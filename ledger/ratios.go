package ledger

import "time"

// RatioSet is the flat document of derived financial ratios. Percentage
// ratios are expressed as percentages; the turnover and current ratios are
// plain quotients. Every ratio falls back to 0 when its denominator bucket
// is zero. All values are rounded to two decimal places.
type RatioSet struct {
	GrossProfit            float64 `json:"gross_profit"`
	NetProfit              float64 `json:"net_profit"`
	CurrentRatio           float64 `json:"current_ratio"`
	DebtRatio              float64 `json:"debt_ratio"`
	DebtToEquityRatio      float64 `json:"debt_to_equity_ratio"`
	AssetTurnoverRatio     float64 `json:"asset_turnover_ratio"`
	InventoryTurnoverRatio float64 `json:"inventory_turnover_ratio"`
	GrossMarginRatio       float64 `json:"gross_margin_ratio"`
	OperatingMarginRatio   float64 `json:"operating_margin_ratio"`
	ReturnOnAssetsRatio    float64 `json:"return_on_assets_ratio"`
	ReturnOnEquityRatio    float64 `json:"return_on_equity_ratio"`
	NetProfitMarginRatio   float64 `json:"net_profit_margin_ratio"`
}

// TrailingReturns is the reduced ratio document for rolling-window queries.
type TrailingReturns struct {
	ReturnOnAssetsRatio float64 `json:"return_on_assets_ratio"`
	ReturnOnEquityRatio float64 `json:"return_on_equity_ratio"`
}

// RatioComparison pairs the ratio documents for two adjacent calendar months.
type RatioComparison struct {
	Current  RatioSet `json:"current_month"`
	Previous RatioSet `json:"previous_month"`
}

// div implements the undefined-ratio-is-zero policy.
func div(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

func ratiosOf(txs []Transaction, f Filter) RatioSet {
	byMain := Aggregate(txs, ByMainCategory, f)
	bySub := Aggregate(txs, BySubcategory, f)

	revenue := byMain[MainRevenue]
	cogs := byMain[MainCOGS]
	expense := byMain[MainExpense]
	assets := byMain[MainAssets]
	liabilities := byMain[MainLiabilities]
	equity := bySub[SubShareholderEquity]
	sales := bySub[SubSales]
	inventory := bySub[SubInventory]

	grossProfit := revenue - cogs
	netProfit := grossProfit - expense

	return RatioSet{
		GrossProfit:            round2(grossProfit),
		NetProfit:              round2(netProfit),
		CurrentRatio:           round2(div(assets, liabilities)),
		DebtRatio:              round2(div(liabilities, assets) * 100),
		DebtToEquityRatio:      round2(div(liabilities, equity) * 100),
		AssetTurnoverRatio:     round2(div(sales, assets)),
		InventoryTurnoverRatio: round2(div(cogs, inventory)),
		GrossMarginRatio:       round2(div(grossProfit, sales) * 100),
		OperatingMarginRatio:   round2(div(netProfit, sales) * 100),
		ReturnOnAssetsRatio:    round2(div(netProfit, assets) * 100),
		ReturnOnEquityRatio:    round2(div(netProfit, equity) * 100),
		NetProfitMarginRatio:   round2(div(netProfit, revenue) * 100),
	}
}

// ComputeRatios derives the full ratio document over the whole ledger.
func ComputeRatios(txs []Transaction) (RatioSet, error) {
	if len(txs) == 0 {
		return RatioSet{}, ErrEmptyLedger
	}
	return ratiosOf(txs, Filter{}), nil
}

// ComputeRatiosForRange derives the ratio document over the transactions
// dated within [from, to] inclusive. A window that matches nothing yields an
// all-zero document; ErrEmptyLedger is only returned when the ledger itself
// is empty.
func ComputeRatiosForRange(txs []Transaction, from, to time.Time) (RatioSet, error) {
	if len(txs) == 0 {
		return RatioSet{}, ErrEmptyLedger
	}
	return ratiosOf(txs, Filter{From: &from, To: &to}), nil
}

// ComputeRatiosTrailing derives the return ratios over the rolling window of
// the given number of months ending at asOf. Evaluation time is explicit so
// the computation stays deterministic.
func ComputeRatiosTrailing(txs []Transaction, months int, asOf time.Time) (TrailingReturns, error) {
	if len(txs) == 0 {
		return TrailingReturns{}, ErrEmptyLedger
	}
	from := asOf.AddDate(0, -months, 0)
	rs := ratiosOf(txs, Filter{From: &from, To: &asOf})
	return TrailingReturns{
		ReturnOnAssetsRatio: rs.ReturnOnAssetsRatio,
		ReturnOnEquityRatio: rs.ReturnOnEquityRatio,
	}, nil
}

// CompareRatiosMonthly derives the ratio documents for the calendar month
// containing asOf and for the month before it.
func CompareRatiosMonthly(txs []Transaction, asOf time.Time) (RatioComparison, error) {
	if len(txs) == 0 {
		return RatioComparison{}, ErrEmptyLedger
	}

	curFrom, curTo := monthBounds(asOf)
	prevFrom, prevTo := monthBounds(curFrom.AddDate(0, 0, -1))

	return RatioComparison{
		Current:  ratiosOf(txs, Filter{From: &curFrom, To: &curTo}),
		Previous: ratiosOf(txs, Filter{From: &prevFrom, To: &prevTo}),
	}, nil
}

func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
