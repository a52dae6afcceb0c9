// Package depreciation computes straight-line (定額法) depreciation for
// fixed assets. Yen amounts are floor-rounded and the book value never
// drops below the 1円 memorandum floor the Japanese filing convention
// keeps on the books.
package depreciation

import (
	"encoding/json"

	"github.com/komu10/keiri_service/keiri_core"
)

// YearAmount is one asset's depreciation figures for one fiscal year.
// Annual is the book depreciation, Reported the business-use share that
// goes on the expense side of the tax report.
type YearAmount struct {
	Year        int   `json:"year"`
	Annual      int64 `json:"annual"`
	Reported    int64 `json:"reported"`
	Accumulated int64 `json:"accumulated"`
	BookValue   int64 `json:"book_value"`
}

type ErrAssetInvalid struct {
	AssetID uint   `json:"asset_id"`
	Name    string `json:"name"`
	Reason  string `json:"reason"`
}

// Error implements error.
func (e *ErrAssetInvalid) Error() string {
	raw, _ := json.Marshal(e)
	return "asset invalid for depreciation " + string(raw)
}

// Calculate returns the straight-line figures for one asset in one
// target year. The first year is not pro-rated by month, an asset
// acquired in December still takes a full year.
func Calculate(asset *keiri_core.Asset, year int) (*YearAmount, error) {
	if asset.UsefulLife <= 0 {
		return nil, &ErrAssetInvalid{
			AssetID: asset.ID,
			Name:    asset.Name,
			Reason:  "useful_life must be positive",
		}
	}
	if asset.AcquisitionCost < 0 {
		return nil, &ErrAssetInvalid{
			AssetID: asset.ID,
			Name:    asset.Name,
			Reason:  "acquisition_cost must not be negative",
		}
	}

	result := YearAmount{Year: year}
	yearsOwned := year - asset.AcquisitionYear()

	switch {
	case yearsOwned < 0:
		// not acquired yet, full cost still on the books
		result.BookValue = asset.AcquisitionCost
	case yearsOwned >= asset.UsefulLife:
		result.Accumulated = asset.AcquisitionCost - 1
		result.BookValue = 1
	default:
		annual := asset.AcquisitionCost / int64(asset.UsefulLife)
		accumulated := annual * int64(yearsOwned+1)
		if accumulated > asset.AcquisitionCost-1 {
			accumulated = asset.AcquisitionCost - 1
		}
		result.Annual = annual
		result.Reported = annual * asset.BusinessUseRatio / 100
		result.Accumulated = accumulated
		result.BookValue = asset.AcquisitionCost - accumulated
	}

	return &result, nil
}

// Schedule returns the year rows from acquisition until the asset is
// fully written down to the memorandum value.
func Schedule(asset *keiri_core.Asset, fromYear int, toYear int) ([]*YearAmount, error) {
	rows := []*YearAmount{}
	for year := fromYear; year <= toYear; year++ {
		row, err := Calculate(asset, year)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
