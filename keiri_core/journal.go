package keiri_core

// JournalEntry is one two-sided bookkeeping line derived from a
// transaction. Entries are never persisted, the journal is re-derived
// from the transaction list on every read.
type JournalEntry struct {
	Date         string `json:"date"`
	Debit        string `json:"debit"`
	DebitAmount  int64  `json:"debit_amount"`
	Credit       string `json:"credit"`
	CreditAmount int64  `json:"credit_amount"`
	Desc         string `json:"desc"`
}

// DeriveJournalEntry maps a transaction to its journal entry. Revenue
// debits the cash book and credits the revenue kamoku, expense is the
// mirror image. Unknown kamoku ids degrade to the raw id as label.
func DeriveJournalEntry(tx *Transaction) *JournalEntry {
	entry := JournalEntry{
		Date: tx.Date,
		Desc: entryDesc(tx),
	}

	label := KamokuLabel(tx.Kamoku)

	switch tx.TxType {
	case RevenueTx:
		entry.Debit = CashKamokuName
		entry.DebitAmount = tx.Amount
		entry.Credit = label
		entry.CreditAmount = tx.Amount
	default:
		entry.Debit = label
		entry.DebitAmount = tx.Amount
		entry.Credit = CashKamokuName
		entry.CreditAmount = tx.Amount
	}

	return &entry
}

func entryDesc(tx *Transaction) string {
	if tx.Description != "" {
		return tx.Description
	}
	return tx.Store
}

type JournalEntriesList []*JournalEntry

func DeriveJournal(list TransactionList) JournalEntriesList {
	entries := make(JournalEntriesList, 0, len(list))
	for _, tx := range list {
		entries = append(entries, DeriveJournalEntry(tx))
	}
	return entries
}

type BalanceCheck struct {
	Debit  int64 `json:"debit"`
	Credit int64 `json:"credit"`
}

func (b *BalanceCheck) Balanced() bool {
	return b.Debit == b.Credit
}

// Balance sums both sides separately. The derivation rule makes the
// journal balanced by construction, the check still totals each side
// on its own so a mismatch would actually surface.
func (entries JournalEntriesList) Balance() *BalanceCheck {
	check := BalanceCheck{}
	for _, e := range entries {
		check.Debit += e.DebitAmount
		check.Credit += e.CreditAmount
	}
	return &check
}
