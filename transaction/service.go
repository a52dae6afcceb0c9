package transaction

import (
	"context"

	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm"
)

type TransactionService interface {
	Create(ctx context.Context, pay *CreatePayload) (*keiri_core.Transaction, error)
	Update(ctx context.Context, id uint, pay *UpdatePayload) (*keiri_core.Transaction, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *ListFilter) (keiri_core.TransactionList, error)
	Import(ctx context.Context, rows []*ImportRow) ([]*keiri_core.Transaction, []error)
}

type transactionServiceImpl struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) TransactionService {
	return &transactionServiceImpl{
		db: db,
	}
}
