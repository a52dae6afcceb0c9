package keiri_service

import (
	"log"
	"log/slog"

	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MigrationHandler func() error

func NewMigrationHandler(
	db *gorm.DB,
) MigrationHandler {
	return func() error {
		log.Println("migrating keiri service")
		return db.AutoMigrate(
			&keiri_core.Transaction{},
			&keiri_core.Project{},
			&keiri_core.Asset{},
			&keiri_core.AnbunSetting{},
		)
	}
}

type SeedHandler func() error

// NewSeedHandler seeds the default apportionment ratios for the
// kamoku flagged as apportionable. Existing rows are left alone so
// reruns never clobber tuned ratios.
func NewSeedHandler(
	db *gorm.DB,
) SeedHandler {
	return func() error {
		log.Println("seeding keiri service")

		for _, k := range keiri_core.DefaultKamoku() {
			if !k.Anbun {
				continue
			}

			setting := keiri_core.AnbunSetting{
				Kamoku: k.ID,
				Owner:  keiri_core.OwnerAll,
				Ratio:  100,
			}

			err := db.
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&setting).Error

			if err != nil {
				slog.Error(err.Error())
			}
		}

		return nil
	}
}
