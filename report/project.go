package report

import (
	"sort"

	"github.com/komu10/keiri_service/keiri_core"
)

type ProjectStats struct {
	ProjectID uint                `json:"project_id"`
	Project   *keiri_core.Project `json:"project"`
	Totals
}

// ROI is profit over spend as a percentage. ok is false when nothing
// was spent, views render a dash there instead of a number.
func (p *ProjectStats) ROI() (float64, bool) {
	if p.Expense <= 0 {
		return 0, false
	}
	return float64(p.Profit) / float64(p.Expense) * 100, true
}

// BudgetUsed is expense over the project budget as a percentage. Over
// 100 flags an overrun, it is a signal, not an error.
func (p *ProjectStats) BudgetUsed() (float64, bool) {
	if p.Project == nil || p.Project.Budget <= 0 {
		return 0, false
	}
	return float64(p.Expense) / float64(p.Project.Budget) * 100, true
}

// TargetAchieved is revenue over the project revenue target as a
// percentage.
func (p *ProjectStats) TargetAchieved() (float64, bool) {
	if p.Project == nil || p.Project.TargetRevenue <= 0 {
		return 0, false
	}
	return float64(p.Revenue) / float64(p.Project.TargetRevenue) * 100, true
}

// ProjectBreakdown aggregates per project id observed among linked
// transactions. A dangling project reference (project deleted after
// linking) still produces a row, with a nil Project, so its amounts
// are not silently dropped from the view.
func ProjectBreakdown(
	list keiri_core.TransactionList,
	projects []*keiri_core.Project,
) []*ProjectStats {
	index := map[uint]*ProjectStats{}
	projectIndex := map[uint]*keiri_core.Project{}
	for _, p := range projects {
		projectIndex[p.ID] = p
	}

	for _, tx := range list {
		if tx.ProjectID == 0 {
			continue
		}
		stats, ok := index[tx.ProjectID]
		if !ok {
			stats = &ProjectStats{
				ProjectID: tx.ProjectID,
				Project:   projectIndex[tx.ProjectID],
			}
			index[tx.ProjectID] = stats
		}
		switch tx.TxType {
		case keiri_core.RevenueTx:
			stats.Revenue += tx.Amount
		case keiri_core.ExpenseTx:
			stats.Expense += tx.Amount
		}
	}

	rows := make([]*ProjectStats, 0, len(index))
	for _, stats := range index {
		stats.Profit = stats.Revenue - stats.Expense
		rows = append(rows, stats)
	}

	// map iteration is unordered, pin a stable output order
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ProjectID < rows[j].ProjectID
	})

	return rows
}
