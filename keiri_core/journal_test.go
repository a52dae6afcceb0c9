package keiri_core_test

import (
	"testing"

	"github.com/komu10/keiri_service/keiri_core"
	"github.com/stretchr/testify/assert"
)

func TestDeriveJournalEntry(t *testing.T) {
	t.Run("revenue debits the cash book", func(t *testing.T) {
		entry := keiri_core.DeriveJournalEntry(&keiri_core.Transaction{
			TxType: keiri_core.RevenueTx,
			Date:   "2025-03-10",
			Amount: 50000,
			Kamoku: keiri_core.SalesKamoku,
			Store:  "クライアントA",
		})

		assert.Equal(t, keiri_core.CashKamokuName, entry.Debit)
		assert.Equal(t, int64(50000), entry.DebitAmount)
		assert.Equal(t, "売上高", entry.Credit)
		assert.Equal(t, int64(50000), entry.CreditAmount)
		assert.Equal(t, "クライアントA", entry.Desc)
	})

	t.Run("expense credits the cash book", func(t *testing.T) {
		entry := keiri_core.DeriveJournalEntry(&keiri_core.Transaction{
			TxType:      keiri_core.ExpenseTx,
			Date:        "2025-03-12",
			Amount:      1200,
			Kamoku:      keiri_core.CommunicationKamoku,
			Description: "モバイル回線",
			Store:       "docomo",
		})

		assert.Equal(t, "通信費", entry.Debit)
		assert.Equal(t, keiri_core.CashKamokuName, entry.Credit)
		assert.Equal(t, int64(1200), entry.CreditAmount)
		assert.Equal(t, "モバイル回線", entry.Desc, "description wins over store")
	})

	t.Run("unknown kamoku degrades to the raw id", func(t *testing.T) {
		entry := keiri_core.DeriveJournalEntry(&keiri_core.Transaction{
			TxType: keiri_core.ExpenseTx,
			Date:   "2025-01-01",
			Amount: 100,
			Kamoku: keiri_core.KamokuID("mystery"),
		})

		assert.Equal(t, "mystery", entry.Debit)
	})
}

func TestJournalBalance(t *testing.T) {
	list := keiri_core.TransactionList{
		{TxType: keiri_core.RevenueTx, Date: "2025-01-05", Amount: 50000, Kamoku: keiri_core.SalesKamoku},
		{TxType: keiri_core.ExpenseTx, Date: "2025-01-08", Amount: 20000, Kamoku: keiri_core.OutsourceKamoku},
		{TxType: keiri_core.ExpenseTx, Date: "2025-02-01", Amount: 333, Kamoku: keiri_core.SuppliesKamoku},
	}

	entries := keiri_core.DeriveJournal(list)
	assert.Len(t, entries, 3)

	check := entries.Balance()
	assert.True(t, check.Balanced())
	assert.Equal(t, int64(70333), check.Debit)
	assert.Equal(t, check.Debit, check.Credit)
}
