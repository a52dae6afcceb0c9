package main

import (
	"log"
	"os"

	"github.com/komu10/keiri_service"
	"github.com/komu10/keiri_service/configs"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewConfig() (*configs.AppConfig, error) {
	path := os.Getenv("KEIRI_CONFIG")
	if path == "" {
		path = "keiri.yaml"
	}
	return configs.LoadConfig(path)
}

func NewDatabase(cfg *configs.AppConfig) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
}

type Migration struct {
	Run func() error
}

func NewMigration(
	migrate keiri_service.MigrationHandler,
	seed keiri_service.SeedHandler,
) *Migration {
	return &Migration{
		Run: func() error {
			err := migrate()
			if err != nil {
				return err
			}

			err = seed()
			if err != nil {
				return err
			}

			log.Println("migration done")
			return nil
		},
	}
}

func main() {
	mig, err := InitializeMigration()
	if err != nil {
		panic(err)
	}

	err = mig.Run()
	if err != nil {
		panic(err)
	}
}
