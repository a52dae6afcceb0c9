package report

import (
	"github.com/komu10/keiri_service/keiri_core"
)

// RunwayInfinite is the sentinel reported when there is no burn to
// divide by, the original dashboard shows it as 99 months.
const RunwayInfinite float64 = 99

type RunwayEstimate struct {
	CashBalance       int64   `json:"cash_balance"`
	TotalExpense      int64   `json:"total_expense"`
	ObservedMonths    int     `json:"observed_months"`
	AvgMonthlyExpense float64 `json:"avg_monthly_expense"`
	Months            float64 `json:"months"`
}

// Runway estimates months of cash left at the observed average burn.
// The average divides by the count of distinct calendar months seen in
// the snapshot, floored at one. The cash balance is an injected
// figure, the core does not derive it.
func Runway(list keiri_core.TransactionList, cashBalance int64) *RunwayEstimate {
	est := RunwayEstimate{CashBalance: cashBalance}

	months := map[string]struct{}{}
	for _, tx := range list {
		if key := tx.YearMonth(); key != "" {
			months[key] = struct{}{}
		}
		if tx.TxType == keiri_core.ExpenseTx {
			est.TotalExpense += tx.Amount
		}
	}

	est.ObservedMonths = len(months)
	if est.ObservedMonths < 1 {
		est.ObservedMonths = 1
	}

	est.AvgMonthlyExpense = float64(est.TotalExpense) / float64(est.ObservedMonths)
	if est.AvgMonthlyExpense <= 0 {
		est.Months = RunwayInfinite
		return &est
	}

	est.Months = float64(cashBalance) / est.AvgMonthlyExpense
	return &est
}
