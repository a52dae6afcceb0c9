package keiri_core

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type TxType string

const (
	ExpenseTx TxType = "expense"
	RevenueTx TxType = "revenue"
)

type TxSource string

const (
	ManualSource TxSource = "manual"
	AISource     TxSource = "ai"
	CSVSource    TxSource = "csv"
	SheetSource  TxSource = "sheets"
)

// Transaction is the one mutable source record everything else is
// derived from. Dates are kept in ISO form (yyyy-mm-dd) so year and
// month filters stay plain string ranges in the store.
type Transaction struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	TxType       TxType     `json:"tx_type" gorm:"index"`
	Date         string     `json:"date" gorm:"index"`
	Amount       int64      `json:"amount"`
	Kamoku       KamokuID   `json:"kamoku" gorm:"index"`
	Division     DivisionID `json:"division"`
	Owner        OwnerKey   `json:"owner" gorm:"index"`
	Store        string     `json:"store"`
	Description  string     `json:"description"`
	Memo         string     `json:"memo"`
	ProjectID    uint       `json:"project_id" gorm:"index"`
	RevenueKind  string     `json:"revenue_kind"`
	Source       TxSource   `json:"source"`
	AIConfidence float64    `json:"ai_confidence"`
	Confirmed    bool       `json:"confirmed"`
	ExternalID   string     `json:"external_id" gorm:"index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (t *Transaction) Year() int {
	if len(t.Date) < 4 {
		return 0
	}
	y, _ := strconv.Atoi(t.Date[:4])
	return y
}

func (t *Transaction) Month() int {
	if len(t.Date) < 7 {
		return 0
	}
	m, _ := strconv.Atoi(t.Date[5:7])
	return m
}

// YearMonth returns the yyyy-mm bucket key for the transaction.
func (t *Transaction) YearMonth() string {
	if len(t.Date) < 7 {
		return ""
	}
	return t.Date[:7]
}

func (t *Transaction) Validate() error {
	if t.Amount < 0 {
		return &ErrRecordInvalid{Entity: "transaction", Field: "amount", Value: t.Amount}
	}
	if t.TxType != ExpenseTx && t.TxType != RevenueTx {
		return &ErrRecordInvalid{Entity: "transaction", Field: "tx_type", Value: string(t.TxType)}
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return &ErrRecordInvalid{Entity: "transaction", Field: "date", Value: t.Date}
	}
	return nil
}

type TransactionList []*Transaction

func (list TransactionList) FilterYear(year int) TransactionList {
	out := TransactionList{}
	for _, t := range list {
		if t.Year() == year {
			out = append(out, t)
		}
	}
	return out
}

func (list TransactionList) FilterMonth(year int, month int) TransactionList {
	out := TransactionList{}
	for _, t := range list {
		if t.Year() == year && t.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// FilterOwner keeps transactions of one owner. OwnerAll is the whole
// book, no restriction.
func (list TransactionList) FilterOwner(owner OwnerKey) TransactionList {
	if owner == OwnerAll || owner == "" {
		return list
	}
	out := TransactionList{}
	for _, t := range list {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out
}

func (list TransactionList) FilterDivision(id DivisionID) TransactionList {
	out := TransactionList{}
	for _, t := range list {
		if t.Division == id {
			out = append(out, t)
		}
	}
	return out
}

func (list TransactionList) FilterProject(projectID uint) TransactionList {
	out := TransactionList{}
	for _, t := range list {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

type Project struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	Name          string        `json:"name"`
	Division      DivisionID    `json:"division"`
	Owner         OwnerKey      `json:"owner"`
	Status        ProjectStatus `json:"status"`
	Client        string        `json:"client"`
	Category      string        `json:"category"`
	Location      string        `json:"location"`
	ShootDate     string        `json:"shoot_date"`
	PublishDate   string        `json:"publish_date"`
	Budget        int64         `json:"budget"`
	TargetRevenue int64         `json:"target_revenue"`
	SeqNo         uint          `json:"seq_no"`
	ExternalID    string        `json:"external_id"`
	Note          string        `json:"note"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// SeqLabel formats the project-wide sequence number, PJ-007 style.
// Empty when no sequence number was assigned yet.
func (p *Project) SeqLabel() string {
	if p.SeqNo == 0 {
		return ""
	}
	return fmt.Sprintf("PJ-%03d", p.SeqNo)
}

// DivisionSeqLabel formats the division-scoped number from the division
// prefix and the external id, BIZ-012 style.
func (p *Project) DivisionSeqLabel() string {
	div, ok := DivisionByID(p.Division)
	if !ok || div.Prefix == "" || p.ExternalID == "" {
		return ""
	}
	if n, err := strconv.Atoi(p.ExternalID); err == nil {
		return fmt.Sprintf("%s-%03d", div.Prefix, n)
	}
	return fmt.Sprintf("%s-%s", div.Prefix, p.ExternalID)
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return &ErrRecordInvalid{Entity: "project", Field: "name", Value: p.Name}
	}
	switch p.Status {
	case ProjectOrdered, ProjectActive, ProjectCompleted:
	default:
		return &ErrRecordInvalid{Entity: "project", Field: "status", Value: string(p.Status)}
	}
	return nil
}

type Asset struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Owner            OwnerKey  `json:"owner"`
	AcquisitionDate  string    `json:"acquisition_date"`
	AcquisitionCost  int64     `json:"acquisition_cost"`
	UsefulLife       int       `json:"useful_life"`
	BusinessUseRatio int64     `json:"business_use_ratio"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (a *Asset) AcquisitionYear() int {
	if len(a.AcquisitionDate) < 4 {
		return 0
	}
	y, _ := strconv.Atoi(a.AcquisitionDate[:4])
	return y
}

func (a *Asset) Validate() error {
	if a.UsefulLife <= 0 {
		return &ErrRecordInvalid{Entity: "asset", Field: "useful_life", Value: a.UsefulLife}
	}
	if a.AcquisitionCost < 0 {
		return &ErrRecordInvalid{Entity: "asset", Field: "acquisition_cost", Value: a.AcquisitionCost}
	}
	if a.BusinessUseRatio < 0 || a.BusinessUseRatio > 100 {
		return &ErrRecordInvalid{Entity: "asset", Field: "business_use_ratio", Value: a.BusinessUseRatio}
	}
	if _, err := time.Parse("2006-01-02", a.AcquisitionDate); err != nil {
		return &ErrRecordInvalid{Entity: "asset", Field: "acquisition_date", Value: a.AcquisitionDate}
	}
	return nil
}

// AnbunSetting is the business-use share for one (owner, kamoku) pair.
// The store keeps at most one row per pair, enforced by the unique
// index and the upsert in the anbun service.
type AnbunSetting struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Kamoku    KamokuID  `json:"kamoku" gorm:"index:owner_kamoku,unique"`
	Owner     OwnerKey  `json:"owner" gorm:"index:owner_kamoku,unique"`
	Ratio     int64     `json:"ratio"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AnbunSetting) Validate() error {
	if s.Ratio < 0 || s.Ratio > 100 {
		return &ErrRecordInvalid{Entity: "anbun_setting", Field: "ratio", Value: s.Ratio}
	}
	if s.Kamoku == "" {
		return &ErrRecordInvalid{Entity: "anbun_setting", Field: "kamoku", Value: string(s.Kamoku)}
	}
	return nil
}

type ErrRecordInvalid struct {
	Entity string `json:"entity"`
	Field  string `json:"field"`
	Value  any    `json:"value"`
}

// Error implements error.
func (e *ErrRecordInvalid) Error() string {
	raw, _ := json.Marshal(e)
	return "record invalid " + string(raw)
}
