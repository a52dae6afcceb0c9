package anbun

import (
	"context"

	"github.com/komu10/keiri_service/keiri_core"
)

// SettingList implements AnbunService. OwnerAll returns every setting.
func (a *anbunServiceImpl) SettingList(
	ctx context.Context,
	owner keiri_core.OwnerKey,
) ([]*keiri_core.AnbunSetting, error) {
	var err error
	settings := []*keiri_core.AnbunSetting{}

	query := a.db.WithContext(ctx).Model(&keiri_core.AnbunSetting{})
	if owner != keiri_core.OwnerAll && owner != "" {
		query = query.Where("owner = ?", owner)
	}

	err = query.
		Order("kamoku asc").
		Find(&settings).
		Error

	return settings, err
}

// ResolverFor implements AnbunService. The resolver is a snapshot of
// the current settings, apportionment is never frozen at transaction
// time.
func (a *anbunServiceImpl) ResolverFor(
	ctx context.Context,
	owner keiri_core.OwnerKey,
) (*Resolver, error) {
	settings, err := a.SettingList(ctx, owner)
	if err != nil {
		return nil, err
	}
	return NewResolver(settings), nil
}
