package keiri_service

import (
	"github.com/komu10/keiri_service/anbun"
	"github.com/komu10/keiri_service/asset"
	"github.com/komu10/keiri_service/project"
	"github.com/komu10/keiri_service/report"
	"github.com/komu10/keiri_service/transaction"
	"gorm.io/gorm"
)

// Services bundles every service of the module behind one constructor
// so embedders wire a single value instead of five.
type Services struct {
	Transaction transaction.TransactionService
	Asset       asset.AssetService
	Project     project.ProjectService
	Anbun       anbun.AnbunService
	Report      report.ReportService
}

func NewServices(db *gorm.DB) *Services {
	return &Services{
		Transaction: transaction.NewTransactionService(db),
		Asset:       asset.NewAssetService(db),
		Project:     project.NewProjectService(db),
		Anbun:       anbun.NewAnbunService(db),
		Report:      report.NewReportService(db),
	}
}
