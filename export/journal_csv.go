package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/komu10/keiri_service/keiri_core"
)

// JournalRow is one line of the 仕訳帳 CSV, headers in Japanese so the
// file opens directly in the accountant's spreadsheet.
type JournalRow struct {
	Date         string `csv:"日付"`
	Debit        string `csv:"借方科目"`
	DebitAmount  int64  `csv:"借方金額"`
	Credit       string `csv:"貸方科目"`
	CreditAmount int64  `csv:"貸方金額"`
	Store        string `csv:"取引先"`
	Desc         string `csv:"内容"`
	Project      string `csv:"プロジェクト"`
}

// JournalRows pairs derived entries back with their source
// transactions to carry the store and project columns.
func JournalRows(
	list keiri_core.TransactionList,
	projects []*keiri_core.Project,
) []*JournalRow {
	projectIndex := map[uint]*keiri_core.Project{}
	for _, p := range projects {
		projectIndex[p.ID] = p
	}

	rows := make([]*JournalRow, 0, len(list))
	for _, tx := range list {
		entry := keiri_core.DeriveJournalEntry(tx)
		row := JournalRow{
			Date:         entry.Date,
			Debit:        entry.Debit,
			DebitAmount:  entry.DebitAmount,
			Credit:       entry.Credit,
			CreditAmount: entry.CreditAmount,
			Store:        tx.Store,
			Desc:         entry.Desc,
		}
		if p, ok := projectIndex[tx.ProjectID]; ok {
			row.Project = p.SeqLabel()
		}
		rows = append(rows, &row)
	}
	return rows
}

// WriteJournal writes the journal CSV for one snapshot. Quoting and
// escaping of embedded commas or quotes is the encoder's job.
func WriteJournal(
	w io.Writer,
	list keiri_core.TransactionList,
	projects []*keiri_core.Project,
) error {
	return gocsv.Marshal(JournalRows(list, projects), w)
}

// JournalFilename names the download, 仕訳帳_2025.csv for a year or
// 仕訳帳_2025-04.csv when scoped to a month.
func JournalFilename(year int, month int) string {
	if month == 0 {
		return fmt.Sprintf("仕訳帳_%04d.csv", year)
	}
	return fmt.Sprintf("仕訳帳_%04d-%02d.csv", year, month)
}
