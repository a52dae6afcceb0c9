package transaction

import (
	"context"
	"fmt"

	"github.com/komu10/keiri_service/keiri_core"
	"gorm.io/gorm"
)

type ListFilter struct {
	Owner     keiri_core.OwnerKey
	Year      int
	Month     int
	Division  keiri_core.DivisionID
	ProjectID uint
	Kamoku    keiri_core.KamokuID
	TxType    keiri_core.TxType
}

// List implements TransactionService. Results come back in ascending
// date order, the order the journal and exports render in.
func (t *transactionServiceImpl) List(
	ctx context.Context,
	filter *ListFilter,
) (keiri_core.TransactionList, error) {
	var err error
	list := keiri_core.TransactionList{}

	view := NewTransactionView(t.db.WithContext(ctx))
	view.createQuery()

	if filter != nil {
		view.
			Owner(filter.Owner).
			Year(filter.Year).
			Month(filter.Year, filter.Month).
			Division(filter.Division).
			ProjectID(filter.ProjectID).
			Kamoku(filter.Kamoku).
			TxType(filter.TxType)
	}

	err = view.
		SortByDate().
		Find(&list).
		Err()

	return list, err
}

type TransactionView interface {
	createQuery() TransactionView
	Owner(owner keiri_core.OwnerKey) TransactionView
	Year(year int) TransactionView
	Month(year int, month int) TransactionView
	Division(id keiri_core.DivisionID) TransactionView
	ProjectID(id uint) TransactionView
	Kamoku(id keiri_core.KamokuID) TransactionView
	TxType(ty keiri_core.TxType) TransactionView
	SortByDate() TransactionView
	Count(c *int64) TransactionView
	Find(dest *keiri_core.TransactionList) TransactionView
	Err() error
}

type transactionViewImpl struct {
	db    *gorm.DB
	query *gorm.DB
	err   error
}

// Owner implements TransactionView. OwnerAll is the whole book.
func (v *transactionViewImpl) Owner(owner keiri_core.OwnerKey) TransactionView {
	if owner == "" || owner == keiri_core.OwnerAll {
		return v
	}
	v.query = v.
		query.
		Where("owner = ?", owner)
	return v
}

// Year implements TransactionView. ISO dates make the year a plain
// string range.
func (v *transactionViewImpl) Year(year int) TransactionView {
	if year == 0 {
		return v
	}
	v.query = v.
		query.
		Where("date >= ?", fmt.Sprintf("%04d-01-01", year)).
		Where("date < ?", fmt.Sprintf("%04d-01-01", year+1))
	return v
}

// Month implements TransactionView.
func (v *transactionViewImpl) Month(year int, month int) TransactionView {
	if year == 0 || month == 0 {
		return v
	}
	v.query = v.
		query.
		Where("date like ?", fmt.Sprintf("%04d-%02d-%%", year, month))
	return v
}

// Division implements TransactionView.
func (v *transactionViewImpl) Division(id keiri_core.DivisionID) TransactionView {
	if id == "" {
		return v
	}
	v.query = v.
		query.
		Where("division = ?", id)
	return v
}

// ProjectID implements TransactionView.
func (v *transactionViewImpl) ProjectID(id uint) TransactionView {
	if id == 0 {
		return v
	}
	v.query = v.
		query.
		Where("project_id = ?", id)
	return v
}

// Kamoku implements TransactionView.
func (v *transactionViewImpl) Kamoku(id keiri_core.KamokuID) TransactionView {
	if id == "" {
		return v
	}
	v.query = v.
		query.
		Where("kamoku = ?", id)
	return v
}

// TxType implements TransactionView.
func (v *transactionViewImpl) TxType(ty keiri_core.TxType) TransactionView {
	if ty == "" {
		return v
	}
	v.query = v.
		query.
		Where("tx_type = ?", ty)
	return v
}

// SortByDate implements TransactionView.
func (v *transactionViewImpl) SortByDate() TransactionView {
	v.query = v.
		query.
		Order("date asc, id asc")
	return v
}

// Count implements TransactionView.
func (v *transactionViewImpl) Count(c *int64) TransactionView {
	err := v.
		query.
		Count(c).
		Error
	return v.setErr(err)
}

// Find implements TransactionView.
func (v *transactionViewImpl) Find(dest *keiri_core.TransactionList) TransactionView {
	err := v.
		query.
		Find(dest).
		Error
	return v.setErr(err)
}

// Err implements TransactionView.
func (v *transactionViewImpl) Err() error {
	return v.err
}

func (v *transactionViewImpl) createQuery() TransactionView {
	v.query = v.
		db.
		Model(&keiri_core.Transaction{})
	return v
}

func (v *transactionViewImpl) setErr(err error) *transactionViewImpl {
	if v.err != nil {
		return v
	}

	if err != nil {
		v.err = err
	}
	return v
}

func NewTransactionView(db *gorm.DB) TransactionView {
	return &transactionViewImpl{
		db:    db,
		query: db,
	}
}
