package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type UpdatePayload struct {
	TxType      keiri_core.TxType     `json:"tx_type"`
	Date        string                `json:"date"`
	Amount      int64                 `json:"amount"`
	Kamoku      keiri_core.KamokuID   `json:"kamoku"`
	Division    keiri_core.DivisionID `json:"division"`
	Owner       keiri_core.OwnerKey   `json:"owner"`
	Store       string                `json:"store"`
	Description string                `json:"description"`
	Memo        string                `json:"memo"`
	ProjectID   uint                  `json:"project_id"`
	RevenueKind string                `json:"revenue_kind"`
	Confirmed   bool                  `json:"confirmed"`
}

// Update implements TransactionService. Derived views re-read from the
// store, so an edit needs no cascading fixups anywhere.
func (t *transactionServiceImpl) Update(
	ctx context.Context,
	id uint,
	pay *UpdatePayload,
) (*keiri_core.Transaction, error) {
	var err error
	var tx keiri_core.Transaction

	db := t.db.WithContext(ctx)

	err = db.
		Model(&keiri_core.Transaction{}).
		First(&tx, id).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	tx.TxType = pay.TxType
	tx.Date = pay.Date
	tx.Amount = pay.Amount
	tx.Kamoku = pay.Kamoku
	tx.Division = pay.Division
	tx.Owner = pay.Owner
	tx.Store = pay.Store
	tx.Description = pay.Description
	tx.Memo = pay.Memo
	tx.ProjectID = pay.ProjectID
	tx.RevenueKind = pay.RevenueKind
	tx.Confirmed = pay.Confirmed
	tx.UpdatedAt = time.Now()

	err = tx.Validate()
	if err != nil {
		return nil, err
	}

	err = db.
		Save(&tx).
		Error

	if err != nil {
		return nil, err
	}

	return &tx, nil
}
