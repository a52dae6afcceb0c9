package project

import (
	"context"

	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm"
)

type ProjectService interface {
	Create(ctx context.Context, pay *CreatePayload) (*keiri_core.Project, error)
	List(ctx context.Context, filter *ListFilter) ([]*keiri_core.Project, error)
	Delete(ctx context.Context, id uint) error
}

type projectServiceImpl struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) ProjectService {
	return &projectServiceImpl{
		db: db,
	}
}
