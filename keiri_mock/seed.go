package keiri_mock

import (
	"fmt"
	"testing"

	"github.com/komu10/keiri_service/keiri_core"
	"github.com/zeebo/assert"
	"gorm.io/gorm"
)

// PopulateTransactions saves the given rows, filling a date when the
// fixture left it blank so Validate passes.
func PopulateTransactions(db *gorm.DB, txs []*keiri_core.Transaction) SetupFunc {
	return func(t *testing.T) func() error {
		for i, tx := range txs {
			if tx.Date == "" {
				tx.Date = fmt.Sprintf("2025-01-%02d", i%28+1)
			}
			if tx.Owner == "" {
				tx.Owner = keiri_core.OwnerTomo
			}
			assert.Nil(t, db.Save(tx).Error)
		}
		return nil
	}
}

// PopulateProjects seeds projects with sequential seq numbers.
func PopulateProjects(db *gorm.DB, projects []*keiri_core.Project) SetupFunc {
	return func(t *testing.T) func() error {
		for i, p := range projects {
			if p.SeqNo == 0 {
				p.SeqNo = uint(i + 1)
			}
			if p.Status == "" {
				p.Status = keiri_core.ProjectActive
			}
			if p.Owner == "" {
				p.Owner = keiri_core.OwnerTomo
			}
			assert.Nil(t, db.Save(p).Error)
		}
		return nil
	}
}

// PopulateAssets seeds fixed assets.
func PopulateAssets(db *gorm.DB, assets []*keiri_core.Asset) SetupFunc {
	return func(t *testing.T) func() error {
		for _, a := range assets {
			if a.BusinessUseRatio == 0 {
				a.BusinessUseRatio = 100
			}
			if a.Owner == "" {
				a.Owner = keiri_core.OwnerTomo
			}
			assert.Nil(t, db.Save(a).Error)
		}
		return nil
	}
}

// PopulateAnbunSettings seeds apportionment ratios.
func PopulateAnbunSettings(db *gorm.DB, settings []*keiri_core.AnbunSetting) SetupFunc {
	return func(t *testing.T) func() error {
		for _, s := range settings {
			if s.Owner == "" {
				s.Owner = keiri_core.OwnerTomo
			}
			assert.Nil(t, db.Save(s).Error)
		}
		return nil
	}
}
