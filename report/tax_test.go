package report_test

import (
	"testing"

	"github.com/komu10/keiri_service/anbun"
	"github.com/komu10/keiri_service/keiri_core"
	"github.com/komu10/keiri_service/report"
	"github.com/stretchr/testify/assert"
)

func TestBuildTaxReport(t *testing.T) {
	resolver := anbun.NewResolver([]*keiri_core.AnbunSetting{
		{Kamoku: keiri_core.CommunicationKamoku, Owner: keiri_core.OwnerTomo, Ratio: 50},
	})

	list := keiri_core.TransactionList{
		{TxType: keiri_core.RevenueTx, Date: "2025-01-10", Amount: 500000, Kamoku: keiri_core.SalesKamoku, Owner: keiri_core.OwnerTomo},
		{TxType: keiri_core.ExpenseTx, Date: "2025-02-15", Amount: 10000, Kamoku: keiri_core.CommunicationKamoku, Owner: keiri_core.OwnerTomo},
		{TxType: keiri_core.ExpenseTx, Date: "2025-03-01", Amount: 30000, Kamoku: keiri_core.TravelKamoku, Owner: keiri_core.OwnerTomo},
		// other year, other owner, both out of scope
		{TxType: keiri_core.ExpenseTx, Date: "2024-03-01", Amount: 99999, Kamoku: keiri_core.TravelKamoku, Owner: keiri_core.OwnerTomo},
		{TxType: keiri_core.ExpenseTx, Date: "2025-03-01", Amount: 88888, Kamoku: keiri_core.TravelKamoku, Owner: keiri_core.OwnerToshiki},
	}

	rep := report.BuildTaxReport(list, resolver, keiri_core.OwnerTomo, 2025)

	index := map[keiri_core.KamokuID]*report.TaxRow{}
	for _, row := range rep.Rows {
		index[row.Kamoku] = row
	}

	t.Run("rows follow the chart of accounts", func(t *testing.T) {
		chart := keiri_core.DefaultKamoku()
		assert.Len(t, rep.Rows, len(chart))
		for i, k := range chart {
			assert.Equal(t, k.ID, rep.Rows[i].Kamoku)
		}
	})

	t.Run("expense side is apportioned", func(t *testing.T) {
		row := index[keiri_core.CommunicationKamoku]
		assert.Equal(t, int64(10000), row.Raw)
		assert.Equal(t, int64(5000), row.AfterAnbun)
	})

	t.Run("revenue side is never apportioned", func(t *testing.T) {
		row := index[keiri_core.SalesKamoku]
		assert.Equal(t, int64(500000), row.AfterAnbun)
	})

	t.Run("unconfigured kamoku keeps the full amount", func(t *testing.T) {
		row := index[keiri_core.TravelKamoku]
		assert.Equal(t, int64(30000), row.AfterAnbun)
	})

	assert.Equal(t, int64(500000), rep.TotalRevenue)
	assert.Equal(t, int64(35000), rep.TotalExpense)
	assert.Equal(t, int64(465000), rep.NetIncome)
}

func TestBuildTaxReportUnknownKamoku(t *testing.T) {
	resolver := anbun.NewResolver(nil)

	list := keiri_core.TransactionList{
		{TxType: keiri_core.ExpenseTx, Date: "2025-05-01", Amount: 700, Kamoku: keiri_core.KamokuID("legacy_fee"), Owner: keiri_core.OwnerTomo},
	}

	rep := report.BuildTaxReport(list, resolver, keiri_core.OwnerTomo, 2025)
	assert.Len(t, rep.Rows, len(keiri_core.DefaultKamoku())+1)

	last := rep.Rows[len(rep.Rows)-1]
	assert.Equal(t, keiri_core.KamokuID("legacy_fee"), last.Kamoku)
	assert.Equal(t, "legacy_fee", last.Label)
	assert.Equal(t, int64(700), rep.TotalExpense)
}
