package project

import (
	"context"

	"github.com/komu10/keiri_service/keiri_core"
)

type ListFilter struct {
	Owner    keiri_core.OwnerKey
	Division keiri_core.DivisionID
	Status   keiri_core.ProjectStatus
}

// List implements ProjectService.
func (p *projectServiceImpl) List(
	ctx context.Context,
	filter *ListFilter,
) ([]*keiri_core.Project, error) {
	var err error
	projects := []*keiri_core.Project{}

	query := p.db.WithContext(ctx).Model(&keiri_core.Project{})

	if filter != nil {
		if filter.Owner != "" && filter.Owner != keiri_core.OwnerAll {
			query = query.Where("owner = ?", filter.Owner)
		}
		if filter.Division != "" {
			query = query.Where("division = ?", filter.Division)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	err = query.
		Order("seq_no asc").
		Find(&projects).
		Error

	return projects, err
}
