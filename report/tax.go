package report

import (
	"github.com/komu10/keiri_service/anbun"
	"github.com/komu10/keiri_service/keiri_core"
)

type TaxRow struct {
	Kamoku     keiri_core.KamokuID   `json:"kamoku"`
	Label      string                `json:"label"`
	Type       keiri_core.KamokuType `json:"type"`
	Ratio      int64                 `json:"ratio"`
	Raw        int64                 `json:"raw"`
	AfterAnbun int64                 `json:"after_anbun"`
}

type TaxReport struct {
	Year         int                 `json:"year"`
	Owner        keiri_core.OwnerKey `json:"owner"`
	Rows         []*TaxRow           `json:"rows"`
	TotalRevenue int64               `json:"total_revenue"`
	TotalExpense int64               `json:"total_expense"`
	NetIncome    int64               `json:"net_income"`
}

// BuildTaxReport rolls one owner's year up per kamoku, apportionment
// applied per transaction on the expense side only. Rows follow the
// fixed chart-of-accounts order so the summary lines up with the
// E-TAX input screens. Transactions on an unknown kamoku get a
// trailing row labeled with the raw id, their yen stay in the totals.
func BuildTaxReport(
	list keiri_core.TransactionList,
	resolver *anbun.Resolver,
	owner keiri_core.OwnerKey,
	year int,
) *TaxReport {
	rep := TaxReport{
		Year:  year,
		Owner: owner,
		Rows:  []*TaxRow{},
	}

	index := map[keiri_core.KamokuID]*TaxRow{}
	for _, k := range keiri_core.DefaultKamoku() {
		row := &TaxRow{
			Kamoku: k.ID,
			Label:  k.Name,
			Type:   k.Type,
			Ratio:  resolver.Ratio(k.ID, owner),
		}
		index[k.ID] = row
		rep.Rows = append(rep.Rows, row)
	}

	scoped := list.FilterOwner(owner).FilterYear(year)
	for _, tx := range scoped {
		row, ok := index[tx.Kamoku]
		if !ok {
			row = &TaxRow{
				Kamoku: tx.Kamoku,
				Label:  keiri_core.KamokuLabel(tx.Kamoku),
				Type:   keiri_core.KamokuType(tx.TxType),
				Ratio:  resolver.Ratio(tx.Kamoku, tx.Owner),
			}
			index[tx.Kamoku] = row
			rep.Rows = append(rep.Rows, row)
		}

		row.Raw += tx.Amount
		switch row.Type {
		case keiri_core.RevenueType:
			// revenue is never apportioned
			row.AfterAnbun += tx.Amount
		default:
			row.AfterAnbun += anbun.Apply(tx.Amount, resolver.Ratio(tx.Kamoku, tx.Owner))
		}
	}

	for _, row := range rep.Rows {
		switch row.Type {
		case keiri_core.RevenueType:
			rep.TotalRevenue += row.AfterAnbun
		default:
			rep.TotalExpense += row.AfterAnbun
		}
	}
	rep.NetIncome = rep.TotalRevenue - rep.TotalExpense

	return &rep
}
