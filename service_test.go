package keiri_service_test

import (
	"context"
	"testing"

	"github.com/komu10/keiri_service"
	"github.com/komu10/keiri_service/keiri_core"
	"github.com/komu10/keiri_service/keiri_mock"
	"github.com/komu10/keiri_service/transaction"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMigrationAndSeed(t *testing.T) {
	var db gorm.DB

	keiri_mock.Suite(t, "test migration and seed",
		keiri_mock.SetupListFunc{
			keiri_mock.MockSqliteDatabase(&db),
		},
		func(t *testing.T) {
			assert.Nil(t, keiri_service.NewMigrationHandler(&db)())
			assert.Nil(t, keiri_service.NewSeedHandler(&db)())

			var count int64
			err := db.Model(&keiri_core.AnbunSetting{}).Count(&count).Error
			assert.Nil(t, err)
			assert.Equal(t, int64(4), count, "one default setting per apportionable kamoku")

			t.Run("reseed leaves tuned ratios alone", func(t *testing.T) {
				err := db.Model(&keiri_core.AnbunSetting{}).
					Where("kamoku = ?", keiri_core.RentKamoku).
					Update("ratio", 30).Error
				assert.Nil(t, err)

				assert.Nil(t, keiri_service.NewSeedHandler(&db)())

				var setting keiri_core.AnbunSetting
				err = db.Where("kamoku = ?", keiri_core.RentKamoku).First(&setting).Error
				assert.Nil(t, err)
				assert.Equal(t, int64(30), setting.Ratio)
			})
		},
	)
}

func TestServicesEndToEnd(t *testing.T) {
	var db gorm.DB

	keiri_mock.Suite(t, "test services end to end",
		keiri_mock.SetupListFunc{
			keiri_mock.MockSqliteDatabase(&db),
			keiri_mock.MigrateAll(&db),
		},
		func(t *testing.T) {
			ctx := context.Background()
			services := keiri_service.NewServices(&db)

			_, err := services.Transaction.Create(ctx, &transaction.CreatePayload{
				TxType: keiri_core.RevenueTx,
				Date:   "2025-01-10",
				Amount: 50000,
				Kamoku: keiri_core.SalesKamoku,
				Owner:  keiri_core.OwnerTomo,
			})
			assert.Nil(t, err)

			view, err := services.Report.Dashboard(ctx, keiri_core.OwnerAll, 2025)
			assert.Nil(t, err)
			assert.Equal(t, int64(50000), view.Totals.Revenue)

			journal, err := services.Report.Journal(ctx, keiri_core.OwnerAll, 2025, 0)
			assert.Nil(t, err)
			assert.True(t, journal.Balance.Balanced())
		},
	)
}
