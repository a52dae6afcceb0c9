package report

import (
	"context"

	"github.com/komu10/keiri_service/anbun"
	"github.com/komu10/keiri_service/asset"
	"github.com/komu10/keiri_service/depreciation"
	"github.com/komu10/keiri_service/keiri_core"
	"github.com/komu10/keiri_service/project"
	"github.com/komu10/keiri_service/transaction"
	"gorm.io/gorm"
)

type ReportService interface {
	Journal(ctx context.Context, owner keiri_core.OwnerKey, year int, month int) (*JournalView, error)
	Dashboard(ctx context.Context, owner keiri_core.OwnerKey, year int) (*DashboardView, error)
	Tax(ctx context.Context, owner keiri_core.OwnerKey, year int) (*TaxReport, error)
	AssetYearReport(ctx context.Context, owner keiri_core.OwnerKey, year int) (*AssetYearView, error)
	Management(ctx context.Context, owner keiri_core.OwnerKey, cashBalance int64) (*ManagementView, error)
}

type reportServiceImpl struct {
	db       *gorm.DB
	txs      transaction.TransactionService
	assets   asset.AssetService
	projects project.ProjectService
	settings anbun.AnbunService
}

func NewReportService(db *gorm.DB) ReportService {
	return &reportServiceImpl{
		db:       db,
		txs:      transaction.NewTransactionService(db),
		assets:   asset.NewAssetService(db),
		projects: project.NewProjectService(db),
		settings: anbun.NewAnbunService(db),
	}
}

type JournalView struct {
	Entries       keiri_core.JournalEntriesList `json:"entries"`
	Balance       *keiri_core.BalanceCheck      `json:"balance"`
	MonthlyTotals []*MonthJournalTotal          `json:"monthly_totals"`
}

// Journal implements ReportService. Month 0 means the whole year. The
// monthly strip always covers the full year regardless of the month
// filter, matching the journal page.
func (r *reportServiceImpl) Journal(
	ctx context.Context,
	owner keiri_core.OwnerKey,
	year int,
	month int,
) (*JournalView, error) {
	yearList, err := r.txs.List(ctx, &transaction.ListFilter{
		Owner: owner,
		Year:  year,
	})
	if err != nil {
		return nil, err
	}

	scoped := yearList
	if month != 0 {
		scoped = yearList.FilterMonth(year, month)
	}

	entries := keiri_core.DeriveJournal(scoped)
	view := JournalView{
		Entries:       entries,
		Balance:       entries.Balance(),
		MonthlyTotals: MonthlyJournalTotals(yearList, year),
	}

	return &view, nil
}

type DashboardView struct {
	Totals          *Totals            `json:"totals"`
	Monthly         []*MonthBucket     `json:"monthly"`
	ByDivision      []*DivisionTotals  `json:"by_division"`
	DivisionMonthly []*DivisionMonthly `json:"division_monthly"`
	ByProject       []*ProjectStats    `json:"by_project"`
}

// Dashboard implements ReportService.
func (r *reportServiceImpl) Dashboard(
	ctx context.Context,
	owner keiri_core.OwnerKey,
	year int,
) (*DashboardView, error) {
	list, err := r.txs.List(ctx, &transaction.ListFilter{
		Owner: owner,
		Year:  year,
	})
	if err != nil {
		return nil, err
	}

	projects, err := r.projects.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	view := DashboardView{
		Totals:          PeriodTotals(list),
		Monthly:         MonthlySeries(list, year),
		ByDivision:      DivisionBreakdown(list),
		DivisionMonthly: DivisionMonthlyMatrix(list, year),
		ByProject:       ProjectBreakdown(list, projects),
	}

	return &view, nil
}

// Tax implements ReportService. Apportionment uses the settings as
// they are now, the report is retroactive by design.
func (r *reportServiceImpl) Tax(
	ctx context.Context,
	owner keiri_core.OwnerKey,
	year int,
) (*TaxReport, error) {
	list, err := r.txs.List(ctx, &transaction.ListFilter{
		Owner: owner,
		Year:  year,
	})
	if err != nil {
		return nil, err
	}

	resolver, err := r.settings.ResolverFor(ctx, keiri_core.OwnerAll)
	if err != nil {
		return nil, err
	}

	return BuildTaxReport(list, resolver, owner, year), nil
}

type AssetYearView struct {
	Rows          []*depreciation.AssetYear `json:"rows"`
	ReportedTotal int64                     `json:"reported_total"`
	Errors        []error                   `json:"-"`
}

// AssetYearReport implements ReportService. Batch mode collects
// per-asset errors so one bad record cannot blank the whole schedule.
func (r *reportServiceImpl) AssetYearReport(
	ctx context.Context,
	owner keiri_core.OwnerKey,
	year int,
) (*AssetYearView, error) {
	assets, err := r.assets.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	rows, errs := depreciation.YearReport(assets, year)
	view := AssetYearView{
		Rows:          rows,
		ReportedTotal: depreciation.ReportedTotal(rows),
		Errors:        errs,
	}

	return &view, nil
}

type ManagementView struct {
	Totals     *Totals           `json:"totals"`
	ByDivision []*DivisionTotals `json:"by_division"`
	ByProject  []*ProjectStats   `json:"by_project"`
	Runway     *RunwayEstimate   `json:"runway"`
}

// Management implements ReportService. The cash balance is supplied by
// the caller, the book does not track bank balances itself.
func (r *reportServiceImpl) Management(
	ctx context.Context,
	owner keiri_core.OwnerKey,
	cashBalance int64,
) (*ManagementView, error) {
	list, err := r.txs.List(ctx, &transaction.ListFilter{
		Owner: owner,
	})
	if err != nil {
		return nil, err
	}

	projects, err := r.projects.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	view := ManagementView{
		Totals:     PeriodTotals(list),
		ByDivision: DivisionBreakdown(list),
		ByProject:  ProjectBreakdown(list, projects),
		Runway:     Runway(list, cashBalance),
	}

	return &view, nil
}
