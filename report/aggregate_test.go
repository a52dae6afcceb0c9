package report_test

import (
	"testing"

	"github.com/komu10/keiri_service/keiri_core"
	"github.com/komu10/keiri_service/report"
	"github.com/stretchr/testify/assert"
)

func januarySnapshot() keiri_core.TransactionList {
	return keiri_core.TransactionList{
		{TxType: keiri_core.RevenueTx, Date: "2025-01-10", Amount: 50000, Kamoku: keiri_core.SalesKamoku, Division: keiri_core.DataDivision, Owner: keiri_core.OwnerTomo},
		{TxType: keiri_core.ExpenseTx, Date: "2025-01-20", Amount: 20000, Kamoku: keiri_core.OutsourceKamoku, Division: keiri_core.DataDivision, Owner: keiri_core.OwnerTomo},
	}
}

func TestPeriodTotals(t *testing.T) {
	totals := report.PeriodTotals(januarySnapshot())
	assert.Equal(t, int64(50000), totals.Revenue)
	assert.Equal(t, int64(20000), totals.Expense)
	assert.Equal(t, int64(30000), totals.Profit)

	margin, ok := totals.ProfitMargin()
	assert.True(t, ok)
	assert.InDelta(t, 60.0, margin, 0.001)

	t.Run("no revenue means no margin", func(t *testing.T) {
		_, ok := report.PeriodTotals(nil).ProfitMargin()
		assert.False(t, ok)
	})
}

func TestMonthlySeries(t *testing.T) {
	buckets := report.MonthlySeries(januarySnapshot(), 2025)
	assert.Len(t, buckets, 12)

	assert.Equal(t, int64(50000), buckets[0].Revenue)
	assert.Equal(t, int64(20000), buckets[0].Expense)

	for m := 1; m < 12; m++ {
		assert.Equal(t, int64(0), buckets[m].Revenue, "month %d must be a zero bucket", m+1)
		assert.Equal(t, int64(0), buckets[m].Expense)
	}

	t.Run("other years are ignored", func(t *testing.T) {
		buckets := report.MonthlySeries(januarySnapshot(), 2024)
		assert.Equal(t, int64(0), buckets[0].Revenue)
	})
}

func TestMonthlyJournalTotals(t *testing.T) {
	totals := report.MonthlyJournalTotals(januarySnapshot(), 2025)
	assert.Len(t, totals, 12)
	assert.Equal(t, int64(70000), totals[0].Debit)
	assert.Equal(t, totals[0].Debit, totals[0].Credit)
}

func TestDivisionBreakdown(t *testing.T) {
	list := append(januarySnapshot(),
		&keiri_core.Transaction{TxType: keiri_core.ExpenseTx, Date: "2025-02-01", Amount: 3000, Kamoku: keiri_core.RentKamoku, Owner: keiri_core.OwnerTomo},
		&keiri_core.Transaction{TxType: keiri_core.ExpenseTx, Date: "2025-02-02", Amount: 500, Kamoku: keiri_core.MiscKamoku, Division: keiri_core.DivisionID("legacy"), Owner: keiri_core.OwnerTomo},
	)

	rows := report.DivisionBreakdown(list)

	index := map[keiri_core.DivisionID]*report.DivisionTotals{}
	for _, row := range rows {
		index[row.Division] = row
	}

	assert.Equal(t, int64(30000), index[keiri_core.DataDivision].Profit)

	t.Run("blank division lands in the shared bucket", func(t *testing.T) {
		assert.Equal(t, int64(3000), index[keiri_core.GeneralDivision].Expense)
	})

	t.Run("every known division appears even at zero", func(t *testing.T) {
		assert.GreaterOrEqual(t, len(rows), len(keiri_core.DefaultDivisions()))
		assert.Equal(t, int64(0), index[keiri_core.YoutubeDivision].Revenue)
	})

	t.Run("unknown division keeps its yen", func(t *testing.T) {
		assert.Equal(t, int64(500), index[keiri_core.DivisionID("legacy")].Expense)
	})
}

func TestProjectBreakdown(t *testing.T) {
	site := &keiri_core.Project{ID: 1, Name: "サイト制作", Budget: 100000, TargetRevenue: 400000, SeqNo: 1}

	list := keiri_core.TransactionList{
		{TxType: keiri_core.RevenueTx, Date: "2025-03-01", Amount: 300000, Kamoku: keiri_core.SalesKamoku, ProjectID: 1},
		{TxType: keiri_core.ExpenseTx, Date: "2025-03-05", Amount: 150000, Kamoku: keiri_core.OutsourceKamoku, ProjectID: 1},
		{TxType: keiri_core.ExpenseTx, Date: "2025-03-06", Amount: 1000, Kamoku: keiri_core.MiscKamoku, ProjectID: 9},
		{TxType: keiri_core.ExpenseTx, Date: "2025-03-07", Amount: 1000, Kamoku: keiri_core.MiscKamoku},
	}

	rows := report.ProjectBreakdown(list, []*keiri_core.Project{site})
	assert.Len(t, rows, 2, "unlinked transactions stay out")

	stats := rows[0]
	assert.Equal(t, uint(1), stats.ProjectID)
	assert.Equal(t, int64(150000), stats.Profit)

	used, ok := stats.BudgetUsed()
	assert.True(t, ok)
	assert.InDelta(t, 150.0, used, 0.001)

	roi, ok := stats.ROI()
	assert.True(t, ok)
	assert.InDelta(t, 100.0, roi, 0.001)

	achieved, ok := stats.TargetAchieved()
	assert.True(t, ok)
	assert.InDelta(t, 75.0, achieved, 0.001)

	t.Run("dangling reference keeps its row", func(t *testing.T) {
		dangling := rows[1]
		assert.Equal(t, uint(9), dangling.ProjectID)
		assert.Nil(t, dangling.Project)
		_, ok := dangling.BudgetUsed()
		assert.False(t, ok)
	})
}

func TestRunway(t *testing.T) {
	list := keiri_core.TransactionList{
		{TxType: keiri_core.ExpenseTx, Date: "2025-01-10", Amount: 25000, Kamoku: keiri_core.RentKamoku},
		{TxType: keiri_core.ExpenseTx, Date: "2025-02-10", Amount: 15000, Kamoku: keiri_core.RentKamoku},
		{TxType: keiri_core.RevenueTx, Date: "2025-02-20", Amount: 90000, Kamoku: keiri_core.SalesKamoku},
	}

	est := report.Runway(list, 150000)
	assert.Equal(t, 2, est.ObservedMonths)
	assert.InDelta(t, 20000.0, est.AvgMonthlyExpense, 0.001)
	assert.InDelta(t, 7.5, est.Months, 0.001)

	t.Run("no burn reports the sentinel", func(t *testing.T) {
		revenueOnly := keiri_core.TransactionList{
			{TxType: keiri_core.RevenueTx, Date: "2025-01-01", Amount: 1000, Kamoku: keiri_core.SalesKamoku},
		}
		est := report.Runway(revenueOnly, 150000)
		assert.Equal(t, report.RunwayInfinite, est.Months)
	})

	t.Run("empty book reports the sentinel", func(t *testing.T) {
		est := report.Runway(nil, 150000)
		assert.Equal(t, report.RunwayInfinite, est.Months)
	})
}

func TestOrderIndependence(t *testing.T) {
	list := januarySnapshot()
	reversed := keiri_core.TransactionList{list[1], list[0]}

	assert.Equal(t, report.PeriodTotals(list), report.PeriodTotals(reversed))
	assert.Equal(t, report.MonthlySeries(list, 2025), report.MonthlySeries(reversed, 2025))
	assert.Equal(t, report.DivisionBreakdown(list), report.DivisionBreakdown(reversed))
}
