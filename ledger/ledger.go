// Package ledger groups classified transactions into named buckets and
// derives financial ratios and balance sheet documents from them. Everything
// here is pure computation over an in-memory transaction list; callers own
// persistence and transport.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEmptyLedger is returned when a ratio or statement computation receives
// zero transactions, so callers can tell "no data" apart from "all zeros".
var ErrEmptyLedger = errors.New("ledger has no transactions")

// Transaction type tags.
const (
	TypeCredit = "Credit"
	TypeDebit  = "Debit"
)

// Main category labels used by the ratio buckets.
const (
	MainRevenue     = "Revenue"
	MainCOGS        = "COGS"
	MainExpense     = "Expense"
	MainAssets      = "Assets"
	MainLiabilities = "Liabilities"
)

// Subcategory labels used by the ratio buckets.
const (
	SubShareholderEquity = "Shareholder Equity"
	SubSales             = "Sales"
	SubInventory         = "Inventory"
)

// Transaction is the read-only classified ledger entry the engines consume.
// Amount is non-negative; sign semantics are carried by Type and by how a
// bucket is interpreted, never by a negative amount.
type Transaction struct {
	ID           string
	Date         time.Time
	Amount       float64
	Type         string
	CategoryID   string
	MainCategory string
	CategoryType string
	Subcategory  string
}

// GroupBy selects the classification field that keys aggregation buckets.
type GroupBy int

const (
	// ByMainCategory keys buckets on the transaction's main category label.
	ByMainCategory GroupBy = iota
	// BySubcategory keys buckets on the subcategory name.
	BySubcategory
	// ByType keys buckets on the Credit/Debit type tag.
	ByType
	// BySection keys buckets on the composite main category and category
	// type pair, as used for statement routing.
	BySection
)

// Filter restricts which transactions participate in an aggregation. A nil
// bound leaves that side open; the date range is inclusive on both ends.
type Filter struct {
	From       *time.Time
	To         *time.Time
	CategoryID string
}

func (f Filter) keep(t Transaction) bool {
	if f.From != nil && t.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Date.After(*f.To) {
		return false
	}
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	return true
}

func (by GroupBy) key(t Transaction) string {
	switch by {
	case ByMainCategory:
		return t.MainCategory
	case BySubcategory:
		return t.Subcategory
	case ByType:
		return t.Type
	case BySection:
		if t.MainCategory == "" || t.CategoryType == "" {
			return ""
		}
		return t.MainCategory + " / " + t.CategoryType
	}
	return ""
}

// Aggregate sums transaction amounts into buckets keyed by the requested
// classification field. Transactions lacking that field are silently
// excluded. Keys are case-sensitive exact matches.
func Aggregate(txs []Transaction, by GroupBy, f Filter) map[string]float64 {
	buckets := make(map[string]float64)
	for _, t := range txs {
		if !f.keep(t) {
			continue
		}
		key := by.key(t)
		if key == "" {
			continue
		}
		buckets[key] += t.Amount
	}
	return buckets
}

// round2 rounds half away from zero to two decimal places.
func round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
