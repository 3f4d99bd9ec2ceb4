package ledger

import "sort"

// Main category labels used for statement routing.
const (
	SectionAsset     = "Asset"
	SectionLiability = "Liability"
	SectionEquity    = "Equity"
)

// Category type labels that select the current and fixed splits. Anything
// else under an Asset or Liability main category falls to non-current.
const (
	TypeCurrentAsset     = "Current Asset"
	TypeFixedAsset       = "Fixed Asset"
	TypeCurrentLiability = "Current Liability"
)

// Entry is one named line of a balance sheet section.
type Entry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// AssetSection groups asset lines into current, fixed and non-current splits
// with per-split and section totals.
type AssetSection struct {
	Current         []Entry `json:"current_assets"`
	Fixed           []Entry `json:"fixed_assets"`
	NonCurrent      []Entry `json:"non_current_assets"`
	TotalCurrent    float64 `json:"total_current_assets"`
	TotalFixed      float64 `json:"total_fixed_assets"`
	TotalNonCurrent float64 `json:"total_non_current_assets"`
	Total           float64 `json:"total_assets"`
}

// LiabilitySection groups liability lines into current and non-current
// splits with per-split and section totals.
type LiabilitySection struct {
	Current         []Entry `json:"current_liabilities"`
	NonCurrent      []Entry `json:"non_current_liabilities"`
	TotalCurrent    float64 `json:"total_current_liabilities"`
	TotalNonCurrent float64 `json:"total_non_current_liabilities"`
	Total           float64 `json:"total_liabilities"`
}

// BalanceSheet is the composed statement document. Equity has no
// current/non-current split.
type BalanceSheet struct {
	Assets                         AssetSection     `json:"assets"`
	Liabilities                    LiabilitySection `json:"liabilities"`
	Equity                         []Entry          `json:"equity"`
	TotalOwnerEquity               float64          `json:"total_owner_equity"`
	TotalLiabilitiesAndOwnerEquity float64          `json:"total_liabilities_and_owner_equity"`
}

// ComputeBalanceSheet routes every transaction into exactly one of the six
// leaf sections by its main category and category type, accumulates per
// subcategory, and carries split, section and grand totals. Transactions
// without a routable main category are left out of the document.
func ComputeBalanceSheet(txs []Transaction) (BalanceSheet, error) {
	if len(txs) == 0 {
		return BalanceSheet{}, ErrEmptyLedger
	}

	currentAssets := make(map[string]float64)
	fixedAssets := make(map[string]float64)
	nonCurrentAssets := make(map[string]float64)
	currentLiabilities := make(map[string]float64)
	nonCurrentLiabilities := make(map[string]float64)
	equity := make(map[string]float64)

	for _, t := range txs {
		switch t.MainCategory {
		case SectionAsset:
			switch t.CategoryType {
			case TypeCurrentAsset:
				currentAssets[t.Subcategory] += t.Amount
			case TypeFixedAsset:
				fixedAssets[t.Subcategory] += t.Amount
			default:
				nonCurrentAssets[t.Subcategory] += t.Amount
			}
		case SectionLiability:
			if t.CategoryType == TypeCurrentLiability {
				currentLiabilities[t.Subcategory] += t.Amount
			} else {
				nonCurrentLiabilities[t.Subcategory] += t.Amount
			}
		case SectionEquity:
			equity[t.Subcategory] += t.Amount
		}
	}

	doc := BalanceSheet{}
	doc.Assets.Current, doc.Assets.TotalCurrent = entries(currentAssets)
	doc.Assets.Fixed, doc.Assets.TotalFixed = entries(fixedAssets)
	doc.Assets.NonCurrent, doc.Assets.TotalNonCurrent = entries(nonCurrentAssets)
	doc.Assets.Total = round2(doc.Assets.TotalCurrent + doc.Assets.TotalFixed + doc.Assets.TotalNonCurrent)

	doc.Liabilities.Current, doc.Liabilities.TotalCurrent = entries(currentLiabilities)
	doc.Liabilities.NonCurrent, doc.Liabilities.TotalNonCurrent = entries(nonCurrentLiabilities)
	doc.Liabilities.Total = round2(doc.Liabilities.TotalCurrent + doc.Liabilities.TotalNonCurrent)

	doc.Equity, doc.TotalOwnerEquity = entries(equity)
	doc.TotalLiabilitiesAndOwnerEquity = round2(doc.Liabilities.Total + doc.TotalOwnerEquity)

	return doc, nil
}

// entries converts a subcategory bucket into a name-sorted entry list and
// its rounded total. The total is the sum of the rounded leaf amounts so the
// document stays internally consistent.
func entries(bucket map[string]float64) ([]Entry, float64) {
	out := make([]Entry, 0, len(bucket))
	total := 0.0
	for name, amount := range bucket {
		rounded := round2(amount)
		out = append(out, Entry{Name: name, Amount: rounded})
		total += rounded
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, round2(total)
}
