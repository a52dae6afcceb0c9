package asset

import (
	"context"
	"time"

	"github.com/komu10/keiri_service/keiri_core"
)

type CreatePayload struct {
	Name             string              `json:"name"`
	Category         string              `json:"category"`
	Owner            keiri_core.OwnerKey `json:"owner"`
	AcquisitionDate  string              `json:"acquisition_date"`
	AcquisitionCost  int64               `json:"acquisition_cost"`
	UsefulLife       int                 `json:"useful_life"`
	BusinessUseRatio int64               `json:"business_use_ratio"`
}

// Create implements AssetService. A zero or negative useful life is
// rejected here, the depreciation engine divides by it later.
func (a *assetServiceImpl) Create(
	ctx context.Context,
	pay *CreatePayload,
) (*keiri_core.Asset, error) {
	var err error

	ratio := pay.BusinessUseRatio
	if ratio == 0 {
		ratio = 100
	}

	record := keiri_core.Asset{
		Name:             pay.Name,
		Category:         pay.Category,
		Owner:            pay.Owner,
		AcquisitionDate:  pay.AcquisitionDate,
		AcquisitionCost:  pay.AcquisitionCost,
		UsefulLife:       pay.UsefulLife,
		BusinessUseRatio: ratio,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	err = record.Validate()
	if err != nil {
		return nil, err
	}

	err = a.
		db.
		WithContext(ctx).
		Save(&record).
		Error

	if err != nil {
		return nil, err
	}

	return &record, nil
}
