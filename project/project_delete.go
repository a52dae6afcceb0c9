package project

import (
	"context"
	"errors"

	"github.com/komu10/keiri_service/keiri_core"
)

var ErrProjectNotFound = errors.New("project not found")

// Delete implements ProjectService. Transactions referencing the
// project keep their project_id, the reference goes dangling and the
// aggregation layer renders it from the raw id. Nothing is unlinked or
// destroyed beyond the project row itself.
func (p *projectServiceImpl) Delete(ctx context.Context, id uint) error {
	result := p.
		db.
		WithContext(ctx).
		Delete(&keiri_core.Project{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	return nil
}
