package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/komu10/keiri_service"
	"github.com/komu10/keiri_service/configs"
	"github.com/komu10/keiri_service/export"
	"github.com/komu10/keiri_service/keiri_core"
	"github.com/komu10/keiri_service/transaction"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConfig() (*configs.AppConfig, error) {
	path := os.Getenv("KEIRI_CONFIG")
	if path == "" {
		path = "keiri.yaml"
	}
	return configs.LoadConfig(path)
}

func NewDatabase(cfg *configs.AppConfig) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

type App struct {
	Run func() error
}

func NewApp(
	cfg *configs.AppConfig,
	migrate keiri_service.MigrationHandler,
	seed keiri_service.SeedHandler,
	services *keiri_service.Services,
) *App {
	return &App{
		Run: func() error {
			var (
				cmd   = flag.String("report", "journal", "journal, tax or dashboard")
				owner = flag.String("owner", string(keiri_core.OwnerAll), "all, tomo or toshiki")
				year  = flag.Int("year", time.Now().Year(), "target year")
				month = flag.Int("month", 0, "target month, 0 for the whole year")
			)
			flag.Parse()

			err := migrate()
			if err != nil {
				return err
			}
			err = seed()
			if err != nil {
				return err
			}

			ctx := context.Background()
			who := keiri_core.OwnerKey(*owner)

			switch *cmd {
			case "journal":
				list, err := services.Transaction.List(ctx, &transaction.ListFilter{
					Owner: who,
					Year:  *year,
					Month: *month,
				})
				if err != nil {
					return err
				}
				projects, err := services.Project.List(ctx, nil)
				if err != nil {
					return err
				}
				log.Println("writing", export.JournalFilename(*year, *month))
				return export.WriteJournal(os.Stdout, list, projects)

			case "tax":
				rep, err := services.Report.Tax(ctx, who, *year)
				if err != nil {
					return err
				}
				log.Println("writing", export.TaxReportFilename(*year))
				return export.WriteTaxReport(os.Stdout, rep)

			case "dashboard":
				view, err := services.Report.Dashboard(ctx, who, *year)
				if err != nil {
					return err
				}
				runway, err := services.Report.Management(ctx, who, cfg.CashBalance)
				if err != nil {
					return err
				}
				fmt.Printf("%d 売上 %d 経費 %d 利益 %d\n",
					*year, view.Totals.Revenue, view.Totals.Expense, view.Totals.Profit)
				fmt.Printf("資金残月数 %.1f\n", runway.Runway.Months)
				return nil

			default:
				return fmt.Errorf("unknown report %s", *cmd)
			}
		},
	}
}

func main() {
	app, err := InitializeApp()
	if err != nil {
		panic(err)
	}

	err = app.Run()
	if err != nil {
		panic(err)
	}
}
