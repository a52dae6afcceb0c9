package asset

import (
	"context"

	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm"
)

type AssetService interface {
	Create(ctx context.Context, pay *CreatePayload) (*keiri_core.Asset, error)
	List(ctx context.Context, owner keiri_core.OwnerKey) ([]*keiri_core.Asset, error)
}

type assetServiceImpl struct {
	db *gorm.DB
}

func NewAssetService(db *gorm.DB) AssetService {
	return &assetServiceImpl{
		db: db,
	}
}
