package anbun

import (
	"context"

	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm"
)

type AnbunService interface {
	SettingList(ctx context.Context, owner keiri_core.OwnerKey) ([]*keiri_core.AnbunSetting, error)
	SettingUpsert(ctx context.Context, pay *SettingUpsertPayload) (*keiri_core.AnbunSetting, error)
	ResolverFor(ctx context.Context, owner keiri_core.OwnerKey) (*Resolver, error)
}

type anbunServiceImpl struct {
	db *gorm.DB
}

func NewAnbunService(db *gorm.DB) AnbunService {
	return &anbunServiceImpl{
		db: db,
	}
}
