package anbun

import (
	"context"
	"time"

	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm/clause"
)

type SettingUpsertPayload struct {
	Kamoku keiri_core.KamokuID `json:"kamoku"`
	Owner  keiri_core.OwnerKey `json:"owner"`
	Ratio  int64               `json:"ratio"`
	Note   string              `json:"note"`
}

// SettingUpsert implements AnbunService. At most one setting per
// (owner, kamoku) pair, the conflict clause makes the read-or-write
// race safe under concurrent writers.
func (a *anbunServiceImpl) SettingUpsert(
	ctx context.Context,
	pay *SettingUpsertPayload,
) (*keiri_core.AnbunSetting, error) {
	var err error

	setting := keiri_core.AnbunSetting{
		Kamoku:    pay.Kamoku,
		Owner:     pay.Owner,
		Ratio:     pay.Ratio,
		Note:      pay.Note,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err = setting.Validate()
	if err != nil {
		return nil, err
	}

	db := a.db.WithContext(ctx)

	err = db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "kamoku"},
				{Name: "owner"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"ratio",
				"note",
				"updated_at",
			}),
		}).
		Create(&setting).
		Error

	if err != nil {
		return nil, err
	}

	err = db.
		Model(&keiri_core.AnbunSetting{}).
		Where("kamoku = ?", pay.Kamoku).
		Where("owner = ?", pay.Owner).
		First(&setting).
		Error

	return &setting, err
}
