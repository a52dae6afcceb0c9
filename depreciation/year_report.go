package depreciation

import (
	"github.com/komu10/keiri_service/keiri_core"
)

// AssetYear pairs an asset with its figures for the report year.
type AssetYear struct {
	Asset *keiri_core.Asset `json:"asset"`
	*YearAmount
}

// YearReport computes the target-year row for every asset. One
// malformed asset does not abort the batch, its error is collected and
// the remaining assets still get their rows.
func YearReport(assets []*keiri_core.Asset, year int) ([]*AssetYear, []error) {
	rows := []*AssetYear{}
	errs := []error{}

	for _, asset := range assets {
		amount, err := Calculate(asset, year)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rows = append(rows, &AssetYear{Asset: asset, YearAmount: amount})
	}

	return rows, errs
}

// ReportedTotal sums the business-use depreciation of the year rows,
// the figure that joins the expense side of the tax report.
func ReportedTotal(rows []*AssetYear) int64 {
	var total int64
	for _, row := range rows {
		total += row.Reported
	}
	return total
}
