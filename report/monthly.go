package report

import (
	"fmt"

	"github.com/komu10/keiri_service/keiri_core"
)

type MonthBucket struct {
	Month   int   `json:"month"`
	Revenue int64 `json:"revenue"`
	Expense int64 `json:"expense"`
}

// MonthlySeries buckets one year into exactly 12 months. Months with
// no activity report zeros, never absence, so chart consumers can
// index blindly.
func MonthlySeries(list keiri_core.TransactionList, year int) []*MonthBucket {
	buckets := make([]*MonthBucket, 12)
	for m := range buckets {
		buckets[m] = &MonthBucket{Month: m + 1}
	}

	for _, tx := range list {
		if tx.Year() != year {
			continue
		}
		m := tx.Month()
		if m < 1 || m > 12 {
			continue
		}
		switch tx.TxType {
		case keiri_core.RevenueTx:
			buckets[m-1].Revenue += tx.Amount
		case keiri_core.ExpenseTx:
			buckets[m-1].Expense += tx.Amount
		}
	}

	return buckets
}

type MonthJournalTotal struct {
	Month  int   `json:"month"`
	Debit  int64 `json:"debit"`
	Credit int64 `json:"credit"`
}

// MonthlyJournalTotals is the 月別集計 strip of the journal page, the
// per-month debit/credit totals of the derived journal.
func MonthlyJournalTotals(list keiri_core.TransactionList, year int) []*MonthJournalTotal {
	totals := make([]*MonthJournalTotal, 12)
	for m := range totals {
		totals[m] = &MonthJournalTotal{Month: m + 1}
	}

	for _, tx := range list {
		if tx.Year() != year {
			continue
		}
		m := tx.Month()
		if m < 1 || m > 12 {
			continue
		}
		entry := keiri_core.DeriveJournalEntry(tx)
		totals[m-1].Debit += entry.DebitAmount
		totals[m-1].Credit += entry.CreditAmount
	}

	return totals
}

// MonthKey formats a bucket key in yyyy-mm form.
func MonthKey(year int, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
