package project

import (
	"context"
	"time"

	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm"
)

type CreatePayload struct {
	Name          string                   `json:"name"`
	Division      keiri_core.DivisionID    `json:"division"`
	Owner         keiri_core.OwnerKey      `json:"owner"`
	Status        keiri_core.ProjectStatus `json:"status"`
	Client        string                   `json:"client"`
	Category      string                   `json:"category"`
	Location      string                   `json:"location"`
	ShootDate     string                   `json:"shoot_date"`
	PublishDate   string                   `json:"publish_date"`
	Budget        int64                    `json:"budget"`
	TargetRevenue int64                    `json:"target_revenue"`
	ExternalID    string                   `json:"external_id"`
	Note          string                   `json:"note"`
}

// Create implements ProjectService. The sequence number continues from
// the highest one handed out so far, inside the write transaction so
// two creates cannot take the same number.
func (p *projectServiceImpl) Create(
	ctx context.Context,
	pay *CreatePayload,
) (*keiri_core.Project, error) {
	var err error

	status := pay.Status
	if status == "" {
		status = keiri_core.ProjectOrdered
	}

	record := keiri_core.Project{
		Name:          pay.Name,
		Division:      pay.Division,
		Owner:         pay.Owner,
		Status:        status,
		Client:        pay.Client,
		Category:      pay.Category,
		Location:      pay.Location,
		ShootDate:     pay.ShootDate,
		PublishDate:   pay.PublishDate,
		Budget:        pay.Budget,
		TargetRevenue: pay.TargetRevenue,
		ExternalID:    pay.ExternalID,
		Note:          pay.Note,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	err = record.Validate()
	if err != nil {
		return nil, err
	}

	err = p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxSeq uint

		err := tx.
			Model(&keiri_core.Project{}).
			Select("coalesce(max(seq_no), 0)").
			Find(&maxSeq).
			Error

		if err != nil {
			return err
		}

		record.SeqNo = maxSeq + 1

		return tx.Save(&record).Error
	})

	if err != nil {
		return nil, err
	}

	return &record, nil
}
