package transaction

import (
	"context"

	"github.com/komu10/keiri_service/keiri_core"
)

// Delete implements TransactionService. Nothing cascades, journal and
// report rows are always re-derived.
func (t *transactionServiceImpl) Delete(ctx context.Context, id uint) error {
	result := t.
		db.
		WithContext(ctx).
		Delete(&keiri_core.Transaction{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
