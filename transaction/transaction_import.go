package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm"
)

// ImportRow is one already-parsed statement line. Dialect sniffing and
// column mapping happen upstream, this layer only records.
type ImportRow struct {
	TxType      keiri_core.TxType     `json:"tx_type"`
	Date        string                `json:"date"`
	Amount      int64                 `json:"amount"`
	Kamoku      keiri_core.KamokuID   `json:"kamoku"`
	Division    keiri_core.DivisionID `json:"division"`
	Owner       keiri_core.OwnerKey   `json:"owner"`
	Store       string                `json:"store"`
	Description string                `json:"description"`
	ExternalID  string                `json:"external_id"`
}

// Import implements TransactionService. Batch writes collect errors
// per row instead of aborting, one malformed line must not sink the
// statement. Rows without a statement id get a generated one so
// re-imports stay traceable.
func (t *transactionServiceImpl) Import(
	ctx context.Context,
	rows []*ImportRow,
) ([]*keiri_core.Transaction, []error) {
	created := []*keiri_core.Transaction{}
	errs := []error{}

	err := t.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		for _, row := range rows {
			externalID := row.ExternalID
			if externalID == "" {
				externalID = uuid.NewString()
			}

			tx := keiri_core.Transaction{
				TxType:      row.TxType,
				Date:        row.Date,
				Amount:      row.Amount,
				Kamoku:      row.Kamoku,
				Division:    row.Division,
				Owner:       row.Owner,
				Store:       row.Store,
				Description: row.Description,
				Source:      keiri_core.CSVSource,
				ExternalID:  externalID,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}

			if verr := tx.Validate(); verr != nil {
				errs = append(errs, verr)
				continue
			}

			if serr := db.Save(&tx).Error; serr != nil {
				return serr
			}

			created = append(created, &tx)
		}

		return nil
	})

	if err != nil {
		errs = append(errs, err)
	}

	return created, errs
}
