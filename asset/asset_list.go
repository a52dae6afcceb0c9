package asset

import (
	"context"

	"github.com/komu10/keiri_service/keiri_core"
)

// List implements AssetService, newest acquisitions first.
func (a *assetServiceImpl) List(
	ctx context.Context,
	owner keiri_core.OwnerKey,
) ([]*keiri_core.Asset, error) {
	var err error
	assets := []*keiri_core.Asset{}

	query := a.db.WithContext(ctx).Model(&keiri_core.Asset{})
	if owner != keiri_core.OwnerAll && owner != "" {
		query = query.Where("owner = ?", owner)
	}

	err = query.
		Order("acquisition_date desc").
		Find(&assets).
		Error

	return assets, err
}
