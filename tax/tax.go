// Package tax computes state income tax liabilities from static bracket
// schedules. All schedules are data; a single evaluator walks them.
package tax

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownJurisdiction is returned when the jurisdiction key matches
	// none of the configured schedules.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

	// ErrInvalidIncome is returned when income is not a finite number.
	ErrInvalidIncome = errors.New("invalid income")
)

// Bracket is one interval of a progressive schedule. Upper is the inclusive
// upper bound of the interval (math.Inf(1) for the top bracket). Rate applies
// to the income slice above the interval's lower bound, which is the previous
// bracket's Upper. Base is the accumulated amount owed at the lower bound.
type Bracket struct {
	Upper float64
	Rate  float64
	Base  float64
}

// Surcharge is an additional flat-rate amount on the whole income, applied on
// top of the bracket result when income exceeds Threshold.
type Surcharge struct {
	Threshold float64
	Rate      float64
}

// Schedule holds the full rule set for one jurisdiction. A schedule with no
// brackets levies no income tax.
type Schedule struct {
	Brackets  []Bracket
	Surcharge *Surcharge
}

// Compute evaluates the schedule for the given jurisdiction. The jurisdiction
// key is matched case-insensitively with surrounding whitespace ignored. The
// result is rounded half away from zero to two decimal places as the final
// step; no intermediate rounding is performed.
func Compute(jurisdiction string, income float64) (decimal.Decimal, error) {
	sched, ok := schedules[strings.ToLower(strings.TrimSpace(jurisdiction))]
	if !ok {
		return decimal.Zero, ErrUnknownJurisdiction
	}
	// decimal.NewFromFloat panics on non-finite input.
	if math.IsNaN(income) || math.IsInf(income, 0) {
		return decimal.Zero, ErrInvalidIncome
	}
	if len(sched.Brackets) == 0 {
		// No income tax in this jurisdiction.
		return decimal.Zero.Round(2), nil
	}

	amount := 0.0
	lower := 0.0
	for _, b := range sched.Brackets {
		if income <= b.Upper {
			amount = b.Base + (income-lower)*b.Rate
			break
		}
		lower = b.Upper
	}
	if s := sched.Surcharge; s != nil && income > s.Threshold {
		amount += income * s.Rate
	}

	return decimal.NewFromFloat(amount).Round(2), nil
}

// Jurisdictions returns the sorted list of supported jurisdiction keys.
func Jurisdictions() []string {
	keys := make([]string, 0, len(schedules))
	for k := range schedules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
