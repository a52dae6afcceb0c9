// Package report is the one aggregation engine every view reads from.
// All functions are pure over an in-memory transaction snapshot, order
// independent, and never mutate their inputs.
package report

import (
	"github.com/komu10/keiri_service/keiri_core"
)

type Totals struct {
	Revenue int64 `json:"revenue"`
	Expense int64 `json:"expense"`
	Profit  int64 `json:"profit"`
}

// PeriodTotals sums revenue and expense over the given snapshot. The
// caller picks the period by filtering the list first.
func PeriodTotals(list keiri_core.TransactionList) *Totals {
	totals := Totals{}
	for _, tx := range list {
		switch tx.TxType {
		case keiri_core.RevenueTx:
			totals.Revenue += tx.Amount
		case keiri_core.ExpenseTx:
			totals.Expense += tx.Amount
		}
	}
	totals.Profit = totals.Revenue - totals.Expense
	return &totals
}

// ProfitMargin returns profit over revenue as a percentage. ok is
// false when there is no revenue to divide by.
func (t *Totals) ProfitMargin() (float64, bool) {
	if t.Revenue <= 0 {
		return 0, false
	}
	return float64(t.Profit) / float64(t.Revenue) * 100, true
}
