package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/komu10/keiri_service/report"
)

type TaxRow struct {
	Label      string `csv:"科目"`
	Type       string `csv:"区分"`
	Ratio      int64  `csv:"按分率(%)"`
	Raw        int64  `csv:"按分前金額"`
	AfterAnbun int64  `csv:"申告金額"`
}

// WriteTaxReport writes the yearly per-kamoku summary the way the tax
// preparation screens expect it, one row per chart-of-accounts line.
func WriteTaxReport(w io.Writer, rep *report.TaxReport) error {
	rows := make([]*TaxRow, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		rows = append(rows, &TaxRow{
			Label:      r.Label,
			Type:       string(r.Type),
			Ratio:      r.Ratio,
			Raw:        r.Raw,
			AfterAnbun: r.AfterAnbun,
		})
	}
	return gocsv.Marshal(rows, w)
}

func TaxReportFilename(year int) string {
	return fmt.Sprintf("確定申告集計_%04d.csv", year)
}
