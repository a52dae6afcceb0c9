package report

import (
	"github.com/komu10/keiri_service/keiri_core"
)

type DivisionTotals struct {
	Division keiri_core.DivisionID `json:"division"`
	Label    string                `json:"label"`
	Totals
}

// DivisionBreakdown rolls the snapshot up per business division. Every
// known division appears even with zero activity, the set is the fixed
// reference enumeration. Transactions with a blank division land in
// the shared 共通 bucket, an unknown division id gets its own trailing
// row labeled by the raw id so totals stay complete.
func DivisionBreakdown(list keiri_core.TransactionList) []*DivisionTotals {
	rows := []*DivisionTotals{}
	index := map[keiri_core.DivisionID]*DivisionTotals{}

	for _, div := range keiri_core.DefaultDivisions() {
		row := &DivisionTotals{Division: div.ID, Label: div.Name}
		index[div.ID] = row
		rows = append(rows, row)
	}

	for _, tx := range list {
		id := tx.Division
		if id == "" {
			id = keiri_core.GeneralDivision
		}
		row, ok := index[id]
		if !ok {
			row = &DivisionTotals{Division: id, Label: keiri_core.DivisionLabel(id)}
			index[id] = row
			rows = append(rows, row)
		}
		switch tx.TxType {
		case keiri_core.RevenueTx:
			row.Revenue += tx.Amount
		case keiri_core.ExpenseTx:
			row.Expense += tx.Amount
		}
	}

	for _, row := range rows {
		row.Profit = row.Revenue - row.Expense
	}

	return rows
}

type DivisionMonthly struct {
	Division keiri_core.DivisionID `json:"division"`
	Months   []*MonthBucket        `json:"months"`
}

// DivisionMonthlyMatrix is the stacked dashboard chart input, a full
// 12-bucket series per known division.
func DivisionMonthlyMatrix(list keiri_core.TransactionList, year int) []*DivisionMonthly {
	matrix := []*DivisionMonthly{}
	for _, div := range keiri_core.DefaultDivisions() {
		matrix = append(matrix, &DivisionMonthly{
			Division: div.ID,
			Months:   MonthlySeries(list.FilterDivision(div.ID), year),
		})
	}
	return matrix
}
