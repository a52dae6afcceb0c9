package keiri_mock

import (
	"testing"

	"github.com/komu10/keiri_service/keiri_core"
	"github.com/zeebo/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MockSqliteDatabase opens an in-memory database into db so the test
// can declare `var db gorm.DB` up front and share it across setups.
func MockSqliteDatabase(db *gorm.DB) SetupFunc {
	return func(t *testing.T) func() error {
		conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		assert.Nil(t, err)

		*db = *conn
		return nil
	}
}

// MigrateAll migrates the full schema.
func MigrateAll(db *gorm.DB) SetupFunc {
	return func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&keiri_core.Transaction{},
			&keiri_core.Project{},
			&keiri_core.Asset{},
			&keiri_core.AnbunSetting{},
		)
		assert.Nil(t, err)

		return nil
	}
}
