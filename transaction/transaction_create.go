package transaction

import (
	"context"
	"time"

	"github.com/komu10/keiri_service/keiri_core"
)

type CreatePayload struct {
	TxType       keiri_core.TxType     `json:"tx_type"`
	Date         string                `json:"date"`
	Amount       int64                 `json:"amount"`
	Kamoku       keiri_core.KamokuID   `json:"kamoku"`
	Division     keiri_core.DivisionID `json:"division"`
	Owner        keiri_core.OwnerKey   `json:"owner"`
	Store        string                `json:"store"`
	Description  string                `json:"description"`
	Memo         string                `json:"memo"`
	ProjectID    uint                  `json:"project_id"`
	RevenueKind  string                `json:"revenue_kind"`
	Source       keiri_core.TxSource   `json:"source"`
	AIConfidence float64               `json:"ai_confidence"`
	Confirmed    bool                  `json:"confirmed"`
	ExternalID   string                `json:"external_id"`
}

// Create implements TransactionService. Single-record writes are
// fail-fast, a validation error aborts before anything is stored.
func (t *transactionServiceImpl) Create(
	ctx context.Context,
	pay *CreatePayload,
) (*keiri_core.Transaction, error) {
	var err error

	source := pay.Source
	if source == "" {
		source = keiri_core.ManualSource
	}

	tx := keiri_core.Transaction{
		TxType:       pay.TxType,
		Date:         pay.Date,
		Amount:       pay.Amount,
		Kamoku:       pay.Kamoku,
		Division:     pay.Division,
		Owner:        pay.Owner,
		Store:        pay.Store,
		Description:  pay.Description,
		Memo:         pay.Memo,
		ProjectID:    pay.ProjectID,
		RevenueKind:  pay.RevenueKind,
		Source:       source,
		AIConfidence: pay.AIConfidence,
		Confirmed:    pay.Confirmed,
		ExternalID:   pay.ExternalID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err = tx.Validate()
	if err != nil {
		return nil, err
	}

	err = t.
		db.
		WithContext(ctx).
		Save(&tx).
		Error

	if err != nil {
		return nil, err
	}

	return &tx, nil
}
